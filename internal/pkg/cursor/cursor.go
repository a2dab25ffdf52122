// Package cursor implements the opaque keyset cursor used to page through activities newest first.
package cursor

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Cursor points at the last row of a page, ordered by (CreatedAt DESC, ID DESC).
type Cursor struct {
	CreatedAt time.Time
	ID        int64
}

// Encode serialises c into a URL-safe token. A nil cursor encodes to "".
func Encode(c *Cursor) string {
	if c == nil {
		return ""
	}
	raw := fmt.Sprintf("%s|%d", c.CreatedAt.UTC().Format(time.RFC3339Nano), c.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// Decode parses a token produced by Encode. An empty token decodes to a nil cursor.
func Decode(token string) (*Cursor, error) {
	if strings.TrimSpace(token) == "" {
		return nil, nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, errors.Wrap(err, "invalid cursor encoding")
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 {
		return nil, errors.New("invalid cursor format")
	}
	ts, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return nil, errors.Wrap(err, "invalid cursor timestamp")
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid cursor id")
	}
	return &Cursor{CreatedAt: ts, ID: id}, nil
}
