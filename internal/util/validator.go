package util

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"eag.dev/backend/internal/constant"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("agegroup", facetValue(constant.AgeGroups, true))
	validate.RegisterValidation("category", facetValue(constant.Categories, false))
	validate.RegisterValidation("groupsize", facetValue(constant.GroupSizes, true))
	validate.RegisterValidation("materials", facetValue(constant.Materials, false))
	validate.RegisterValidation("materialsfilter", materialsFilter)
	validate.RegisterCustomTypeFunc(nullIntValuer, null.Int{})
	validate.RegisterCustomTypeFunc(nullStringValuer, null.String{})

	return validate
}

// facetValue accepts values from vocabulary, plus the universal tag when allowUniversal is set.
func facetValue(vocabulary []string, allowUniversal bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		if allowUniversal && val == constant.UniversalTag {
			return true
		}
		return lo.Contains(vocabulary, val)
	}
}

func materialsFilter(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return val == constant.UniversalTag || lo.Contains(constant.Materials, val)
}

func nullIntValuer(field reflect.Value) any {
	if valuer, ok := field.Interface().(null.Int); ok {
		return valuer.Int64
	}

	return nil
}

func nullStringValuer(field reflect.Value) any {
	if valuer, ok := field.Interface().(null.String); ok {
		return valuer.String
	}

	return nil
}
