package ytscan

import "time"

// Origin is the absolute URL prefix applied to relative video links.
const Origin = "https://www.youtube.com"

// PostedNotAvailable is the sentinel posted label used when the page does
// not carry a recency string for a video.
const PostedNotAvailable = "N/A"

// Video represents one extracted video listing entry.
type Video struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Views     int64     `json:"views"`
	Posted    string    `json:"posted"`
	ScrapedAt time.Time `json:"scrapedAt"`
}

// Validate returns an error if the video contains invalid fields.
// A video is only acceptable with both a title and a URL; entries missing
// either are dropped by the extractor rather than emitted with placeholders.
func (v *Video) Validate() error {
	if v.Title == "" {
		return Errorf(EINVALID, "video title required")
	}
	if v.URL == "" {
		return Errorf(EINVALID, "video URL required")
	}
	return nil
}
