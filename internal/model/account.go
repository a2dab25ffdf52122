package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Account is the profile record of a signed-up user. Role is only ever written by operators.
type Account struct {
	bun.BaseModel `bun:"accounts,alias:ac"`

	AccountID    int64     `bun:",pk,autoincrement" json:"id"`
	Email        string    `bun:",notnull,unique" json:"email"`
	PasswordHash string    `bun:",notnull" json:"-" msgpack:"passwordHash"`
	Role         string    `bun:",notnull" json:"role"`
	CreatedAt    time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
}

func (a *Account) Identity() *Identity {
	return &Identity{
		AccountID: a.AccountID,
		Email:     a.Email,
		Role:      a.Role,
	}
}
