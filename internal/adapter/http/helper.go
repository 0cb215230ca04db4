package http

import (
	"fmt"
	"strconv"
	"strings"
)

// ---- helpers ----

func parseID(raw string) (uint64, error) {
	return strconv.ParseUint(raw, 10, 64)
}

// money renders a float the way the API speaks currency: a string with
// exactly two decimals.
func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
