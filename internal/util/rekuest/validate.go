package rekuest

import (
	"errors"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	esTranslations "github.com/go-playground/validator/v10/translations/es"
	frTranslations "github.com/go-playground/validator/v10/translations/fr"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"eag.dev/backend/internal/pkg/apierr"
	"eag.dev/backend/internal/util"
	"eag.dev/backend/internal/util/i18n"
)

var Validate = util.NewValidator()

var facetTags = []string{"agegroup", "category", "groupsize", "materials", "materialsfilter"}

func init() {
	registrations := map[string]func(v *validator.Validate, trans ut.Translator) error{
		"en": enTranslations.RegisterDefaultTranslations,
		"es": esTranslations.RegisterDefaultTranslations,
		"fr": frTranslations.RegisterDefaultTranslations,
	}

	for locale, register := range registrations {
		tr, _ := i18n.UT.GetTranslator(locale)
		if err := register(Validate, tr); err != nil {
			log.Warn().Err(err).Str("locale", locale).Msg("could not register translation")
			continue
		}

		for _, tag := range facetTags {
			tag := tag
			err := Validate.RegisterTranslation(tag, tr, func(ut ut.Translator) error {
				return ut.Add(tag, "{0} is not a recognized value", true)
			}, func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T(tag, fe.Field())
				return t
			})
			if err != nil {
				log.Warn().Err(err).Str("locale", locale).Str("tag", tag).Msg("could not register facet translation")
			}
		}
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// Translate translates errors into ErrorResponses
func translate(utt ut.Translator, ve validator.ValidationErrors) []*ErrorResponse {
	trans := []*ErrorResponse{}

	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Field(),
			Violation: fe.Tag(),
			Message:   util.AddSpace(fe.Translate(utt)),
		})
	}

	return trans
}

func validateStruct(tr ut.Translator, s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		panic(err)
	}
	return translate(tr, errs)
}

// Violations validates s with the fallback translator and returns the violations found, if any.
// Services use it to enforce the same rules the HTTP layer does.
func Violations(s any) []*ErrorResponse {
	return validateStruct(i18n.UT.GetFallback(), s)
}

// Check is Violations wrapped as an INVALID_REQUEST error.
func Check(s any) error {
	if v := Violations(s); v != nil {
		return apierr.NewInvalidViolations(v)
	}
	return nil
}

// ValidBody will get the body from *fiber.Ctx using fiber#BodyParser(),
// and validate it using the validator singleton. If the validation passed it will write the unmarshalled body
// to dest and return a nil, otherwise it will return an error. Notice that dest shall
// always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return apierr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(ctx, dest)
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	if err := validateStruct(TranslatorFromCtx(ctx), dest); err != nil {
		return apierr.NewInvalidViolations(err)
	}

	return nil
}

// ValidQuery parses the query string into dest with fiber#QueryParser() and validates it.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return apierr.ErrInvalidReq.Msg("invalid query: %s", err)
	}

	return ValidStruct(ctx, dest)
}
