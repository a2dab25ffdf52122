package model

import (
	"time"

	"eag.dev/backend/internal/constant"
)

// Session is what a session token resolves to in redis.
type Session struct {
	AccountID int64     `msgpack:"accountId"`
	Email     string    `msgpack:"email"`
	Role      string    `msgpack:"role"`
	CreatedAt time.Time `msgpack:"createdAt"`
}

// Identity is the caller of a request as seen by services. The zero Identity is anonymous.
type Identity struct {
	AccountID int64  `json:"accountId,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
}

var Anonymous = &Identity{Role: constant.RoleAnonymous}

func (i *Identity) IsAnonymous() bool {
	return i == nil || i.AccountID == 0
}

// HasRole reports whether the identity is at least as privileged as role.
func (i *Identity) HasRole(role string) bool {
	if i.IsAnonymous() {
		return role == constant.RoleAnonymous
	}
	return constant.RoleRank(i.Role) >= constant.RoleRank(role)
}

const (
	SessionSignedIn  = "signed_in"
	SessionSignedOut = "signed_out"
)

// SessionEvent is broadcast whenever a session is created or destroyed.
type SessionEvent struct {
	Kind      string    `json:"kind"`
	AccountID int64     `json:"accountId"`
	Role      string    `json:"role"`
	At        time.Time `json:"at"`
}
