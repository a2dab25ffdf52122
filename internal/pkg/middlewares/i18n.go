package middlewares

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/util/i18n"
)

// InjectI18n picks the validation message translator from Accept-Language.
func InjectI18n() fiber.Handler {
	return func(c *fiber.Ctx) error {
		set := func(trans ut.Translator) error {
			c.Locals(constant.LocalsTranslatorKey, trans)
			return c.Next()
		}

		tags, _, err := language.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
		if err != nil || len(tags) == 0 {
			return set(i18n.UT.GetFallback())
		}

		langs := make([]string, 0, len(tags)*2)
		for _, tag := range tags {
			base, _ := tag.Base()
			langs = append(langs, strings.ReplaceAll(strings.ToLower(tag.String()), "-", "_"), base.String())
		}

		trans, _ := i18n.UT.FindTranslator(langs...)

		return set(trans)
	}
}
