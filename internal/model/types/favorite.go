package types

type FavoriteOutcome string

const (
	FavoriteSaved        FavoriteOutcome = "saved"
	FavoriteAlreadySaved FavoriteOutcome = "already_saved"
)

type FavoriteResult struct {
	ActivityID int64           `json:"activityId"`
	Outcome    FavoriteOutcome `json:"outcome"`
	Message    string          `json:"message"`
}
