package admin

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model/cache"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/pkg/cachectrl"
	"eag.dev/backend/internal/pkg/middlewares"
	"eag.dev/backend/internal/server/svr"
	"eag.dev/backend/internal/service"
	"eag.dev/backend/internal/util/rekuest"
)

type Moderation struct {
	fx.In

	ModerationService *service.Moderation
}

func RegisterModeration(admin *svr.Admin, c Moderation) {
	admin.Get("/overview", c.GetOverview)
	admin.Get("/stats", c.GetStats)
	admin.Get("/activities", c.ListActivities)
	admin.Post("/activities/:activityId/approve", middlewares.ValidateActivityIDAsParam, c.ApproveActivity)
	admin.Patch("/activities/:activityId", middlewares.ValidateActivityIDAsParam, c.EditActivity)
	admin.Delete("/activities/:activityId", middlewares.RequireRole(constant.RoleAdmin), middlewares.ValidateActivityIDAsParam, c.DeleteActivity)
	admin.Delete("/cache/:name", middlewares.RequireRole(constant.RoleAdmin), c.PurgeCache)
}

// @Summary      Get Moderation Overview
// @Description  Re-derive the dashboard statistics and the pending queue from a fresh read of the catalog
// @Tags         Moderation
// @Produce      json
// @Success      200  {object}  types.ModerationOverview
// @Failure      403  {object}  apierr.APIError  "Moderator role required"
// @Router       /v1/admin/overview [GET]
func (c *Moderation) GetOverview(ctx *fiber.Ctx) error {
	overview, err := c.ModerationService.Overview(ctx.UserContext())
	if err != nil {
		return err
	}
	cachectrl.OptOut(ctx)
	return ctx.JSON(overview)
}

// @Summary      Get Cached Statistics
// @Description  Get the statistics snapshot last computed by the stats worker
// @Tags         Moderation
// @Produce      json
// @Success      200  {object}  catalogstats.Stats
// @Router       /v1/admin/stats [GET]
func (c *Moderation) GetStats(ctx *fiber.Ctx) error {
	stats, err := c.ModerationService.CachedStats(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(stats)
}

// @Summary      List Activities
// @Tags         Moderation
// @Produce      json
// @Param        status  query     string  false  "pending or approved; both when omitted"
// @Param        cursor  query     string  false  "Continuation cursor from a previous page"
// @Param        limit   query     int     false  "Page size"
// @Param        q       query     string  false  "Title or description contains"
// @Success      200     {object}  types.ActivityPage
// @Router       /v1/admin/activities [GET]
func (c *Moderation) ListActivities(ctx *fiber.Ctx) error {
	var req types.ActivityPageRequest
	if err := rekuest.ValidQuery(ctx, &req); err != nil {
		return err
	}

	page, err := c.ModerationService.List(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	cachectrl.OptOut(ctx)
	return ctx.JSON(page)
}

// @Summary      Approve an Activity
// @Tags         Moderation
// @Produce      json
// @Param        activityId  path      int  true  "Activity ID"
// @Success      200         {object}  types.ModerationOverview
// @Failure      404         {object}  apierr.APIError  "Activity not found"
// @Router       /v1/admin/activities/{activityId}/approve [POST]
func (c *Moderation) ApproveActivity(ctx *fiber.Ctx) error {
	overview, err := c.ModerationService.Approve(ctx.UserContext(), middlewares.IdentityFromCtx(ctx), middlewares.ActivityIDFromCtx(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(overview)
}

// @Summary      Edit an Activity
// @Description  Change the title, description or variations of an activity
// @Tags         Moderation
// @Accept       json
// @Produce      json
// @Param        activityId  path      int                  true  "Activity ID"
// @Param        patch       body      types.ActivityPatch  true  "Fields to change"
// @Success      200         {object}  types.ModerationOverview
// @Router       /v1/admin/activities/{activityId} [PATCH]
func (c *Moderation) EditActivity(ctx *fiber.Ctx) error {
	var patch types.ActivityPatch
	if err := rekuest.ValidBody(ctx, &patch); err != nil {
		return err
	}

	overview, err := c.ModerationService.Edit(ctx.UserContext(), middlewares.IdentityFromCtx(ctx), middlewares.ActivityIDFromCtx(ctx), &patch)
	if err != nil {
		return err
	}
	return ctx.JSON(overview)
}

// @Summary      Delete an Activity
// @Description  Delete an activity permanently. Requires the admin role.
// @Tags         Moderation
// @Produce      json
// @Param        activityId  path      int  true  "Activity ID"
// @Success      200         {object}  types.ModerationOverview
// @Failure      403         {object}  apierr.APIError  "Admin role required"
// @Router       /v1/admin/activities/{activityId} [DELETE]
func (c *Moderation) DeleteActivity(ctx *fiber.Ctx) error {
	overview, err := c.ModerationService.Delete(ctx.UserContext(), middlewares.IdentityFromCtx(ctx), middlewares.ActivityIDFromCtx(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(overview)
}

// @Summary      Purge a Cache
// @Tags         Moderation
// @Param        name  path  string  true  "Cache name"
// @Success      204
// @Router       /v1/admin/cache/{name} [DELETE]
func (c *Moderation) PurgeCache(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	if _, ok := cache.FlusherMap[name]; !ok {
		return apierr.ErrNotFound.Msg("unknown cache %q", name)
	}
	if err := cache.Delete(name); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
