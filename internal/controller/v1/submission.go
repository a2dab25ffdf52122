package v1

import (
	"github.com/go-redsync/redsync/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/pkg/fiberstore"
	"eag.dev/backend/internal/pkg/middlewares"
	"eag.dev/backend/internal/server/svr"
	"eag.dev/backend/internal/service"
)

type Submission struct {
	fx.In

	Redis             *redis.Client
	RedSync           *redsync.Redsync
	SubmissionService *service.Submission
}

func RegisterSubmission(v1 *svr.V1, c Submission) {
	v1.Post("/activities",
		middlewares.RequireRole(constant.RoleContributor),
		middlewares.Idempotency(&middlewares.IdempotencyConfig{
			Lifetime:  constant.IdempotencyLifetime,
			KeyHeader: constant.IdempotencyKeyHeader,
			KeepResponseHeaders: []string{
				fiber.HeaderContentType,
				fiber.HeaderContentLength,
			},
			Storage: fiberstore.NewRedis(c.Redis, constant.SubmissionIdempotencyRedisHashKey),
			RedSync: c.RedSync,
		}),
		c.SubmitActivity)
}

// @Summary      Submit an Activity
// @Description  Submit a new activity. Submissions from admins go live immediately, all others wait for review.
// @Tags         Submission
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                      false  "Replays the response of an earlier request with the same key"
// @Param        activity         body      types.ActivitySubmission  true   "Activity draft"
// @Success      201              {object}  types.SubmissionResult
// @Failure      400              {object}  apierr.APIError  "Invalid or missing parameter"
// @Failure      401              {object}  apierr.APIError  "Not signed in"
// @Router       /v1/activities [POST]
func (c *Submission) SubmitActivity(ctx *fiber.Ctx) error {
	var draft types.ActivitySubmission
	if err := ctx.BodyParser(&draft); err != nil {
		return apierr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	// the service validates the draft
	res, err := c.SubmissionService.Submit(ctx.UserContext(), middlewares.IdentityFromCtx(ctx), &draft)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}
