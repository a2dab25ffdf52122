package types

import (
	"gopkg.in/guregu/null.v3"

	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/util/catalogstats"
)

// ActivityPatch carries the fields a moderator may change. Fields left null are kept as is;
// an empty make-it-easier/harder clears the variation.
type ActivityPatch struct {
	Title        null.String `json:"title" validate:"omitempty,max=200" swaggertype:"string"`
	Description  null.String `json:"description" validate:"omitempty,max=10000" swaggertype:"string"`
	MakeItEasier null.String `json:"makeItEasier" validate:"omitempty,max=2000" swaggertype:"string"`
	MakeItHarder null.String `json:"makeItHarder" validate:"omitempty,max=2000" swaggertype:"string"`
}

func (p *ActivityPatch) Empty() bool {
	return !p.Title.Valid && !p.Description.Valid && !p.MakeItEasier.Valid && !p.MakeItHarder.Valid
}

type ActivityPageRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=pending approved"`
	Cursor string `query:"cursor" validate:"max=256"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Term   string `query:"q" validate:"max=128"`
}

type ActivityPage struct {
	Activities []*model.Activity `json:"activities"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

type ModerationOverview struct {
	Stats   *catalogstats.Stats `json:"stats"`
	Pending []*model.Activity   `json:"pending"`
}
