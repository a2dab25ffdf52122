package appconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// Ratio is a fraction in [0, 1]. It accepts both "0.15" and "15%".
type Ratio float64

func (r *Ratio) Decode(value string) error {
	value = strings.TrimSpace(value)
	scale := 1.0
	if strings.HasSuffix(value, "%") {
		value = strings.TrimSuffix(value, "%")
		scale = 100
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid ratio %q: %w", value, err)
	}
	f /= scale
	if f < 0 || f > 1 {
		return fmt.Errorf("invalid ratio %q: must be within [0, 1]", value)
	}
	*r = Ratio(f)
	return nil
}
