package constant

import "time"

const (
	// SessionCookieKey is the cookie in which the session token is carried for browser clients
	SessionCookieKey = "eag_session"

	// SessionAuthorizationRealm is the prefix of the `Authorization` header value
	SessionAuthorizationRealm = "Bearer"

	// SessionTokenLength is the length of a freshly minted session token
	SessionTokenLength = 48

	SessionRedisKeyPrefix = "eag:session:"

	DefaultSessionTTL = time.Hour * 24 * 14

	PasswordMinLength = 8
	// bcrypt silently truncates anything past 72 bytes
	PasswordMaxLength = 72
)

const (
	RoleAnonymous   = "anonymous"
	RoleContributor = "contributor"
	RoleModerator   = "moderator"
	RoleAdmin       = "admin"
)

// Roles lists the roles that can be granted to an account, lowest privilege first.
var Roles = []string{
	RoleContributor,
	RoleModerator,
	RoleAdmin,
}

var roleRanks = map[string]int{
	RoleAnonymous:   0,
	RoleContributor: 1,
	RoleModerator:   2,
	RoleAdmin:       3,
}

// RoleRank returns the privilege rank of role. Unknown roles rank as anonymous.
func RoleRank(role string) int {
	return roleRanks[role]
}
