package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuna checks a card-style payout identifier with the Luhn algorithm.
// Spaces and dashes are tolerated.
func IsLuna(s string) bool {
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	err := goluhn.Validate(s)
	return err == nil
}
