package service

import (
	"strings"

	"gopkg.in/guregu/null.v3"

	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/pkg/apierr"
)

func nullInt(id int64) null.Int {
	return null.NewInt(id, id != 0)
}

// authorize returns ErrUnauthorized for anonymous callers and ErrForbidden for those below role.
func authorize(identity *model.Identity, role string) error {
	if identity.IsAnonymous() {
		return apierr.ErrUnauthorized
	}
	if !identity.HasRole(role) {
		return apierr.ErrForbidden
	}
	return nil
}

func blankWhenSet(s null.String) bool {
	return s.Valid && strings.TrimSpace(s.String) == ""
}
