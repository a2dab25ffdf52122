package types

import (
	"gopkg.in/guregu/null.v3"

	"eag.dev/backend/internal/model"
)

type ActivitySubmission struct {
	Title        string      `json:"title" validate:"required,max=200" required:"true" example:"Sharks and Minnows"`
	Description  string      `json:"description" validate:"required,max=10000" required:"true"`
	AgeGroup     []string    `json:"ageGroup" validate:"required,min=1,max=8,dive,agegroup" required:"true" example:"6-8"`
	Category     []string    `json:"category" validate:"required,min=1,max=8,dive,category" required:"true" example:"Active Sport"`
	GroupSize    []string    `json:"groupSize" validate:"required,min=1,max=8,dive,groupsize" required:"true" example:"11-24"`
	Tags         []string    `json:"tags" validate:"max=16,dive,max=32"`
	Materials    string      `json:"materials" validate:"omitempty,materials" example:"No Prep"`
	MakeItEasier null.String `json:"makeItEasier" validate:"omitempty,max=2000" swaggertype:"string"`
	MakeItHarder null.String `json:"makeItHarder" validate:"omitempty,max=2000" swaggertype:"string"`
}

type SubmissionResult struct {
	Activity *model.Activity `json:"activity"`
	Status   string          `json:"status"`
	Notice   string          `json:"notice"`
}
