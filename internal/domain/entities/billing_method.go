package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownBillingMethod = errors.New("unknown billing method")

// BillingMethod is the unit of measure used to price a translation job.

type BillingMethod string

const (
	BillingMethodWord      BillingMethod = "WORD"
	BillingMethodParagraph BillingMethod = "PARAGRAPH"
	BillingMethodCharacter BillingMethod = "CHARACTER"
	BillingMethodPage      BillingMethod = "PAGE"
)

// ParseBillingMethod maps a user supplied code or abbreviation to its canonical
// value. Matching is case-insensitive; unknown or empty input fails with an
// error naming the offending value. Canonical values parse to themselves, so
// the function is idempotent over its own output.
func ParseBillingMethod(code string) (BillingMethod, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "W", "WORD":
		return BillingMethodWord, nil
	case "P", "PARAGRAPH":
		return BillingMethodParagraph, nil
	case "C", "CHARACTER":
		return BillingMethodCharacter, nil
	case "PG", "PAGE":
		return BillingMethodPage, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBillingMethod, code)
	}
}
