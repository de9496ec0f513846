package ytscan

import (
	"strconv"
	"strings"
)

// ParseViewCount converts a human-readable view count such as "8.8K views",
// "1.2M views" or "12,345 views" into an exact integer. The suffix check is
// case-sensitive (K, M, B) and the scaled value is truncated, not rounded:
// "1.2M views" yields exactly 1200000.
//
// Callers that want the original tool's behavior treat a parse failure as
// zero views: log the returned error as a warning and keep going.
func ParseViewCount(s string) (int64, error) {
	text := strings.ReplaceAll(s, " views", "")
	text = strings.ReplaceAll(text, " view", "")
	text = strings.TrimSpace(text)

	for _, unit := range []struct {
		suffix string
		mult   float64
	}{
		{"K", 1_000},
		{"M", 1_000_000},
		{"B", 1_000_000_000},
	} {
		if !strings.Contains(text, unit.suffix) {
			continue
		}
		n, err := strconv.ParseFloat(strings.ReplaceAll(text, unit.suffix, ""), 64)
		if err != nil {
			return 0, Errorf(EINVALID, "cannot parse view count %q: %v", s, err)
		}
		return int64(n * unit.mult), nil
	}

	n, err := strconv.ParseInt(strings.ReplaceAll(text, ",", ""), 10, 64)
	if err != nil {
		return 0, Errorf(EINVALID, "cannot parse view count %q: %v", s, err)
	}
	return n, nil
}
