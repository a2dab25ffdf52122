package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/cachectrl"
	"eag.dev/backend/internal/pkg/fiberstore"
	"eag.dev/backend/internal/pkg/middlewares"
	"eag.dev/backend/internal/pkg/sessionid"
	"eag.dev/backend/internal/server/svr"
	"eag.dev/backend/internal/service"
	"eag.dev/backend/internal/util/rekuest"
)

type Auth struct {
	fx.In

	Redis          *redis.Client
	AccountService *service.Account
	SessionService *service.Session
}

func RegisterAuth(v1 *svr.V1, c Auth) {
	auth := v1.Group("/auth")

	credentials := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		Storage:    c.limiterStorage(),
		LimitReached: func(ctx *fiber.Ctx) error {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":    "TOO_MANY_REQUESTS",
				"message": "too many attempts, please wait a minute and try again",
			})
		},
	})

	auth.Post("/signup", credentials, c.SignUp)
	auth.Post("/signin", credentials, c.SignIn)
	auth.Post("/signout", c.SignOut)
	auth.Get("/session", c.GetSession)
}

func (c *Auth) limiterStorage() fiber.Storage {
	if c.Redis == nil {
		// the limiter falls back to its in-memory storage
		return nil
	}
	return fiberstore.NewRedis(c.Redis, "eag:limiter:auth")
}

// @Summary      Sign Up
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        account  body      types.SignUpRequest  true  "Credentials"
// @Success      201      {object}  model.Identity
// @Failure      409      {object}  apierr.APIError  "Email already registered"
// @Router       /v1/auth/signup [POST]
func (c *Auth) SignUp(ctx *fiber.Ctx) error {
	var req types.SignUpRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	account, err := c.AccountService.SignUp(ctx.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(&types.SessionResponse{
		Identity: account.Identity(),
	})
}

// @Summary      Sign In
// @Description  Start a session. The token is returned and also set as a cookie.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      types.SignInRequest  true  "Credentials"
// @Success      200          {object}  types.SessionResponse
// @Failure      401          {object}  apierr.APIError  "Invalid email or password"
// @Router       /v1/auth/signin [POST]
func (c *Auth) SignIn(ctx *fiber.Ctx) error {
	var req types.SignInRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.SessionService.SignIn(ctx.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	sessionid.Inject(ctx, res.Token, c.SessionService.TTL)
	cachectrl.OptOut(ctx)
	return ctx.JSON(res)
}

// @Summary      Sign Out
// @Tags         Auth
// @Success      204
// @Router       /v1/auth/signout [POST]
func (c *Auth) SignOut(ctx *fiber.Ctx) error {
	if err := c.SessionService.SignOut(ctx.UserContext(), sessionid.Extract(ctx)); err != nil {
		return err
	}
	sessionid.Clear(ctx)
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary      Get Current Session
// @Description  Get the identity behind the presented session; anonymous when there is none
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  types.SessionResponse
// @Router       /v1/auth/session [GET]
func (c *Auth) GetSession(ctx *fiber.Ctx) error {
	cachectrl.OptOut(ctx)
	return ctx.JSON(&types.SessionResponse{Identity: middlewares.IdentityFromCtx(ctx)})
}
