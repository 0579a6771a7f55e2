package utils

import (
	"fmt"
	"time"
)

// ResolveDayKey converts a point in time plus an optional IANA timezone
// name into the canonical YYYY-MM-DD key for the civil day the timestamp
// falls on in that zone.
//
// This is the only place in the codebase that may turn a timestamp into a
// day string. Every other path (meal logging, reconciliation, summaries,
// step sync) must go through here, otherwise the "what day is this" answer
// drifts between call sites.
//
// Unknown or empty zone names fall back to UTC rather than erroring;
// fixed offsets of the form "+05:30" / "-0800" are also accepted. The
// server's local timezone is never consulted.
func ResolveDayKey(t time.Time, timezone string) string {
	return t.In(resolveLocation(timezone)).Format("2006-01-02")
}

func resolveLocation(timezone string) *time.Location {
	if timezone == "" {
		return time.UTC
	}
	if loc, err := time.LoadLocation(timezone); err == nil {
		return loc
	}
	if loc, ok := parseFixedOffset(timezone); ok {
		return loc
	}
	return time.UTC
}

// parseFixedOffset handles "+05:30", "-08:00" and the colon-less "+0530".
func parseFixedOffset(s string) (*time.Location, bool) {
	if len(s) < 5 || (s[0] != '+' && s[0] != '-') {
		return nil, false
	}
	var hours, mins int
	var n int
	var err error
	if s[3] == ':' {
		n, err = fmt.Sscanf(s[1:], "%02d:%02d", &hours, &mins)
	} else {
		n, err = fmt.Sscanf(s[1:], "%02d%02d", &hours, &mins)
	}
	if err != nil || n != 2 || hours > 14 || mins > 59 {
		return nil, false
	}
	offset := hours*3600 + mins*60
	if s[0] == '-' {
		offset = -offset
	}
	return time.FixedZone(s, offset), true
}
