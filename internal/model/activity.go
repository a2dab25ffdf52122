package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"eag.dev/backend/internal/constant"
)

type Activity struct {
	bun.BaseModel `bun:"activities,alias:a"`

	ActivityID   int64       `bun:",pk,autoincrement" json:"id"`
	Title        string      `bun:",notnull" json:"title"`
	Description  string      `bun:",notnull" json:"description"`
	Category     []string    `bun:",array" json:"category"`
	AgeGroup     []string    `bun:",array" json:"ageGroup"`
	GroupSize    []string    `bun:",array" json:"groupSize"`
	Tags         []string    `bun:",array" json:"tags"`
	Materials    string      `bun:",notnull" json:"materials"`
	MakeItEasier null.String `json:"makeItEasier" swaggertype:"string"`
	MakeItHarder null.String `json:"makeItHarder" swaggertype:"string"`
	Status       string      `bun:",notnull" json:"status"`
	Popularity   int64       `bun:",notnull" json:"popularity"`
	SubmittedBy  null.Int    `json:"-"`
	CreatedAt    time.Time   `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}

func (a *Activity) IsApproved() bool {
	return a.Status == constant.StatusApproved
}
