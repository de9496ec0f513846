package ytscan

import "strings"

// NormalizeChannelURL ensures a channel URL points at its /videos listing.
// URLs that already contain "/videos" pass through unchanged.
func NormalizeChannelURL(raw string) string {
	if strings.Contains(raw, "/videos") {
		return raw
	}
	if strings.HasSuffix(raw, "/") {
		return raw + "videos"
	}
	return raw + "/videos"
}
