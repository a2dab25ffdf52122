package rekuest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/apierr"
)

func TestViolationsReportFields(t *testing.T) {
	v := Violations(&types.ActivitySubmission{Title: "Tag"})
	require.NotEmpty(t, v)

	fields := map[string]string{}
	for _, e := range v {
		fields[e.Field] = e.Violation
	}
	assert.Equal(t, "required", fields["Description"])
	assert.Equal(t, "required", fields["AgeGroup"])
	assert.Equal(t, "required", fields["Category"])
	assert.Equal(t, "required", fields["GroupSize"])
	assert.NotContains(t, fields, "Title")
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(&types.CatalogQuery{Ages: []string{"4-5"}, Materials: "any"}))

	err := Check(&types.CatalogQuery{Categories: []string{"Painting"}})
	assert.ErrorIs(t, err, apierr.ErrInvalidReq)
}
