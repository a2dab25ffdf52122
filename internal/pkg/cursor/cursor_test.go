package cursor

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	c := &Cursor{CreatedAt: time.Date(2024, 3, 9, 10, 11, 12, 345, time.UTC), ID: 42}

	token := Encode(c)
	require.NotEmpty(t, token)

	decoded, err := Decode(token)
	require.NoError(t, err)
	assert.True(t, c.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, int64(42), decoded.ID)
}

func TestEmpty(t *testing.T) {
	assert.Equal(t, "", Encode(nil))

	c, err := Decode("  ")
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, token := range []string{
		"!!!",
		base64.RawURLEncoding.EncodeToString([]byte("no-separator")),
		base64.RawURLEncoding.EncodeToString([]byte("yesterday|1")),
		base64.RawURLEncoding.EncodeToString([]byte("2024-03-09T10:11:12Z|abc")),
	} {
		_, err := Decode(token)
		assert.Error(t, err, token)
	}
}
