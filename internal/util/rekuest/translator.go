package rekuest

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/util/i18n"
)

func TranslatorFromCtx(ctx *fiber.Ctx) ut.Translator {
	if tr, ok := ctx.Locals(constant.LocalsTranslatorKey).(ut.Translator); ok {
		return tr
	}
	return i18n.UT.GetFallback()
}
