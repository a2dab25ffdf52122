package constant

const (
	ServiceName = "eag"

	SiteName = "Every Activity Guide"

	PrintDocumentTitle = "My Activity Library"
)
