package v1

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/fx"

	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/cachectrl"
	"eag.dev/backend/internal/pkg/middlewares"
	"eag.dev/backend/internal/server/svr"
	"eag.dev/backend/internal/service"
	"eag.dev/backend/internal/util/rekuest"
)

type Catalog struct {
	fx.In

	CatalogService *service.Catalog
}

func RegisterCatalog(v1 *svr.V1, c Catalog) {
	v1.Get("/facets", c.GetFacets)
	v1.Get("/activities", c.SearchActivities)
	v1.Get("/activities/:activityId", middlewares.ValidateActivityIDAsParam, c.GetActivity)
}

// queryList collects every value of key, accepting both repeated keys and comma-separated values.
func queryList(ctx *fiber.Ctx, key string) []string {
	values := lo.FlatMap(ctx.Context().QueryArgs().PeekMulti(key), func(v []byte, _ int) []string {
		return strings.Split(string(v), ",")
	})
	return lo.Uniq(lo.FilterMap(values, func(v string, _ int) (string, bool) {
		v = strings.TrimSpace(v)
		return v, v != ""
	}))
}

// @Summary      Get Facets
// @Description  Get the tag vocabularies of every catalog facet, plus the quick search suggestions
// @Tags         Catalog
// @Produce      json
// @Success      200  {object}  types.Facets
// @Router       /v1/facets [GET]
func (c *Catalog) GetFacets(ctx *fiber.Ctx) error {
	facets, err := c.CatalogService.Facets()
	if err != nil {
		return err
	}
	return ctx.JSON(facets)
}

// @Summary      Search Activities
// @Description  Search approved activities by facets and free text. Results come back in random order.
// @Tags         Catalog
// @Produce      json
// @Param        age        query     []string  false  "Age groups; repeated or comma-separated"
// @Param        category   query     []string  false  "Categories; repeated or comma-separated"
// @Param        groupSize  query     []string  false  "Group sizes; repeated or comma-separated"
// @Param        materials  query     string    false  "Prep level, or `any`"
// @Param        q          query     string    false  "Free text"
// @Success      200        {array}   model.Activity
// @Failure      400        {object}  apierr.APIError  "Invalid or missing parameter"
// @Router       /v1/activities [GET]
func (c *Catalog) SearchActivities(ctx *fiber.Ctx) error {
	query := &types.CatalogQuery{
		Ages:       queryList(ctx, "age"),
		Categories: queryList(ctx, "category"),
		GroupSizes: queryList(ctx, "groupSize"),
		Materials:  strings.TrimSpace(ctx.Query("materials")),
		Term:       ctx.Query("q"),
	}
	if err := rekuest.ValidStruct(ctx, query); err != nil {
		return err
	}

	activities, err := c.CatalogService.Search(ctx.UserContext(), query)
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(activities)
}

// @Summary      Get an Activity
// @Tags         Catalog
// @Produce      json
// @Param        activityId  path      int  true  "Activity ID"
// @Success      200         {object}  model.Activity
// @Failure      404         {object}  apierr.APIError  "Activity not found or not approved"
// @Router       /v1/activities/{activityId} [GET]
func (c *Catalog) GetActivity(ctx *fiber.Ctx) error {
	activity, err := c.CatalogService.GetActivity(ctx.UserContext(), middlewares.ActivityIDFromCtx(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(activity)
}
