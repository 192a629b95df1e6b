package format

import "fmt"

// Stars renders a star count compactly: 999 stays as-is, larger counts
// collapse to one decimal with a k/m suffix the way GitHub displays
// them.
func Stars(count int) string {
	switch {
	case count >= 1_000_000:
		return trimDecimal(float64(count)/1_000_000) + "m"
	case count >= 1_000:
		return trimDecimal(float64(count)/1_000) + "k"
	default:
		return fmt.Sprintf("%d", count)
	}
}

// trimDecimal formats with one decimal place, dropping a trailing ".0".
func trimDecimal(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
