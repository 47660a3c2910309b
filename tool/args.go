package tool

import (
	"strconv"
	"strings"
)

// stringArg extracts a string argument, returning fallback when absent
// or blank.
func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// intArg extracts an integer argument, tolerating the float64 values
// JSON decoding produces.
func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// parseNaira extracts the numeric value from a display price such as
// "₦45000" or "₦45,000".
func parseNaira(price string) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, price)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// formatNaira renders an amount with thousands separators, e.g. ₦90,000.
func formatNaira(amount int) string {
	s := strconv.Itoa(amount)
	if len(s) <= 3 {
		return "₦" + s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return "₦" + b.String()
}
