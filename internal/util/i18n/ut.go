package i18n

import (
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
)

// UT falls back to English when no Accept-Language tag matches.
var UT = ut.New(en.New(), en.New(), es.New(), fr.New())
