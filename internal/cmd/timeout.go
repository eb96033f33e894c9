package cmd

import (
	"fmt"
	"strconv"
	"time"

	oerrors "github.com/leetkick/leetkick/internal/errors"
)

// parseTimeout parses a --timeout flag value. Bare numbers are seconds.
func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		secs, atoiErr := strconv.Atoi(s)
		if atoiErr != nil {
			return 0, oerrors.NewValidationError(
				fmt.Sprintf("invalid timeout %q", s), "", "Use a duration such as 30s or 2m.")
		}
		d = time.Duration(secs) * time.Second
	}
	if d < 0 {
		return 0, oerrors.NewValidationError(
			fmt.Sprintf("invalid timeout %q", s), "", "The timeout must not be negative.")
	}
	return d, nil
}
