// Package ytscan provides a CLI tool for scraping YouTube channel video
// listings. It fetches a channel's /videos page through a rendering proxy
// (or a local headless browser), extracts a typed table of video records
// from the returned markup, and exports the results as CSV.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, zenrows/, sqlite/).
package ytscan
