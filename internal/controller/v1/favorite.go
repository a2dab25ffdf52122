package v1

import (
	"github.com/go-redsync/redsync/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/pkg/cachectrl"
	"eag.dev/backend/internal/pkg/fiberstore"
	"eag.dev/backend/internal/pkg/middlewares"
	"eag.dev/backend/internal/server/svr"
	"eag.dev/backend/internal/service"
)

type Favorite struct {
	fx.In

	Redis           *redis.Client
	RedSync         *redsync.Redsync
	FavoriteService *service.Favorite
	ExportService   *service.Export
}

func RegisterFavorite(v1 *svr.V1, c Favorite) {
	favorites := v1.Group("/favorites", middlewares.RequireRole(constant.RoleContributor))

	favorites.Get("/", c.GetFavorites)
	favorites.Get("/print", c.PrintFavorites)
	favorites.Post("/:activityId",
		middlewares.ValidateActivityIDAsParam,
		middlewares.Idempotency(&middlewares.IdempotencyConfig{
			Lifetime:  constant.IdempotencyLifetime,
			KeyHeader: constant.IdempotencyKeyHeader,
			KeepResponseHeaders: []string{
				fiber.HeaderContentType,
				fiber.HeaderContentLength,
			},
			Storage: fiberstore.NewRedis(c.Redis, constant.FavoriteIdempotencyRedisHashKey),
			RedSync: c.RedSync,
		}),
		c.AddFavorite)
	favorites.Delete("/:activityId", middlewares.ValidateActivityIDAsParam, c.RemoveFavorite)
}

// @Summary      Get Favorites
// @Description  Get the activities saved to the caller's library, most recently saved first
// @Tags         Favorite
// @Produce      json
// @Success      200  {array}   model.Activity
// @Failure      401  {object}  apierr.APIError  "Not signed in"
// @Router       /v1/favorites [GET]
func (c *Favorite) GetFavorites(ctx *fiber.Ctx) error {
	activities, err := c.FavoriteService.List(ctx.UserContext(), middlewares.IdentityFromCtx(ctx))
	if err != nil {
		return err
	}
	cachectrl.OptOut(ctx)
	return ctx.JSON(activities)
}

// @Summary      Print Favorites
// @Description  Render the caller's library as a printable HTML document
// @Tags         Favorite
// @Produce      html
// @Success      200  {string}  string  "HTML document"
// @Failure      401  {object}  apierr.APIError  "Not signed in"
// @Router       /v1/favorites/print [GET]
func (c *Favorite) PrintFavorites(ctx *fiber.Ctx) error {
	doc, err := c.ExportService.PrintLibrary(ctx.UserContext(), middlewares.IdentityFromCtx(ctx))
	if err != nil {
		return err
	}
	cachectrl.OptOut(ctx)
	ctx.Type("html", "utf-8")
	return ctx.Send(doc)
}

// @Summary      Save a Favorite
// @Description  Save an activity to the caller's library. Saving an activity twice reports `already_saved`.
// @Tags         Favorite
// @Produce      json
// @Param        activityId  path      int  true  "Activity ID"
// @Success      200         {object}  types.FavoriteResult
// @Failure      404         {object}  apierr.APIError  "Activity not found"
// @Router       /v1/favorites/{activityId} [POST]
func (c *Favorite) AddFavorite(ctx *fiber.Ctx) error {
	res, err := c.FavoriteService.Add(ctx.UserContext(), middlewares.IdentityFromCtx(ctx), middlewares.ActivityIDFromCtx(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// @Summary      Remove a Favorite
// @Tags         Favorite
// @Param        activityId  path  int  true  "Activity ID"
// @Success      204
// @Router       /v1/favorites/{activityId} [DELETE]
func (c *Favorite) RemoveFavorite(ctx *fiber.Ctx) error {
	if err := c.FavoriteService.Remove(ctx.UserContext(), middlewares.IdentityFromCtx(ctx), middlewares.ActivityIDFromCtx(ctx)); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
