package ddbui

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// FormatBytes renders a size as "N bytes".
func FormatBytes[T constraints.Integer](n T) string {
	return fmt.Sprintf("%d bytes", n)
}
