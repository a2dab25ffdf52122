package script_seed

import (
	_ "embed"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"eag.dev/backend/internal/model/types"
)

//go:embed activities.json
var starterActivities []byte

func run(ctx *cli.Context, deps CommandDeps) error {
	account, err := deps.AccountRepo.GetAccountByEmail(ctx.Context, strings.ToLower(strings.TrimSpace(ctx.String("email"))))
	if err != nil {
		return errors.Wrap(err, "failed to look up submitting account")
	}

	var drafts []*types.ActivitySubmission
	if err := json.Unmarshal(starterActivities, &drafts); err != nil {
		return errors.Wrap(err, "failed to decode starter activities")
	}

	identity := account.Identity()
	for _, draft := range drafts {
		result, err := deps.SubmissionService.Submit(ctx.Context, identity, draft)
		if err != nil {
			return errors.Wrapf(err, "failed to seed %q", draft.Title)
		}
		log.Info().
			Int64("activityId", result.Activity.ActivityID).
			Str("status", result.Status).
			Msg("seeded " + draft.Title)
	}

	log.Info().Int("count", len(drafts)).Msg("seed finished")
	return nil
}
