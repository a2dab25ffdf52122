package model

import (
	"time"

	"github.com/uptrace/bun"
)

type Favorite struct {
	bun.BaseModel `bun:"favorites,alias:f"`

	AccountID  int64     `bun:",pk" json:"accountId"`
	ActivityID int64     `bun:",pk" json:"activityId"`
	CreatedAt  time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
