package constant

const (
	PopularityStreamName    = "eag-popularity"
	PopularitySubjectPrefix = "POPULARITY."
	PopularityIncrSubject   = PopularitySubjectPrefix + "increment"
	PopularityConsumerQueue = "eag-popularity"

	SessionStreamName    = "eag-sessions"
	SessionSubjectPrefix = "SESSION."
	SessionChangeSubject = SessionSubjectPrefix + "changed"
)
