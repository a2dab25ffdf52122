package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/pkg/observability"
	"eag.dev/backend/internal/util"
	"eag.dev/backend/internal/util/rekuest"
)

const (
	FacetSelectionMessage = "please select age, category, and group size"

	NoticeLive     = "activity is live"
	NoticeInReview = "submitted for review"
)

var facetFields = []string{"AgeGroup", "Category", "GroupSize"}

type Submission struct {
	ActivityStore ActivityStore
}

func NewSubmission(activityStore ActivityStore) *Submission {
	return &Submission{
		ActivityStore: activityStore,
	}
}

// Submit validates draft and stores it as a new activity. Admin submissions go live right away,
// everyone else's wait for moderation. The role is always taken from identity.
func (s *Submission) Submit(ctx context.Context, identity *model.Identity, draft *types.ActivitySubmission) (*types.SubmissionResult, error) {
	if identity.IsAnonymous() {
		return nil, apierr.ErrUnauthorized.Msg("sign in to submit an activity")
	}

	if violations := rekuest.Violations(draft); len(violations) > 0 {
		facetViolated := lo.SomeBy(violations, func(v *rekuest.ErrorResponse) bool {
			// dive errors are reported against the element, e.g. "GroupSize[0]"
			field, _, _ := strings.Cut(v.Field, "[")
			return lo.Contains(facetFields, field)
		})
		if facetViolated {
			return nil, apierr.ErrInvalidReq.Msg(FacetSelectionMessage).WithExtras(apierr.Extras{"violations": violations})
		}
		return nil, apierr.NewInvalidViolations(violations)
	}

	isAdmin := identity.HasRole(constant.RoleAdmin)
	activity := &model.Activity{
		Title:        strings.TrimSpace(draft.Title),
		Description:  strings.TrimSpace(draft.Description),
		Category:     lo.Uniq(draft.Category),
		AgeGroup:     lo.Uniq(draft.AgeGroup),
		GroupSize:    lo.Uniq(draft.GroupSize),
		Tags:         util.NormalizeTags(draft.Tags),
		Materials:    lo.Ternary(draft.Materials == "", constant.DefaultMaterials, draft.Materials),
		MakeItEasier: draft.MakeItEasier,
		MakeItHarder: draft.MakeItHarder,
		Status:       lo.Ternary(isAdmin, constant.StatusApproved, constant.StatusPending),
		SubmittedBy:  nullInt(identity.AccountID),
	}

	if err := s.ActivityStore.CreateActivity(ctx, activity); err != nil {
		return nil, err
	}

	observability.Submissions.WithLabelValues(activity.Status).Inc()
	log.Info().
		Str("evt.name", "submission.created").
		Int64("activityId", activity.ActivityID).
		Int64("accountId", identity.AccountID).
		Str("status", activity.Status).
		Msg("activity submitted")

	return &types.SubmissionResult{
		Activity: activity,
		Status:   activity.Status,
		Notice:   lo.Ternary(isAdmin, NoticeLive, NoticeInReview),
	}, nil
}
