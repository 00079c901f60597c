package domain

import "strings"

type JobMode string

const (
	ModeRemote  JobMode = "Remote"
	ModeHybrid  JobMode = "Hybrid"
	ModeOnsite  JobMode = "Onsite"
	ModeUnknown JobMode = "Unknown"
)

// ParseMode maps external text to a work mode. Unrecognized input becomes
// Unknown rather than carrying arbitrary strings into the model.
func ParseMode(s string) JobMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "remote":
		return ModeRemote
	case "hybrid":
		return ModeHybrid
	case "onsite", "on-site", "on site":
		return ModeOnsite
	default:
		return ModeUnknown
	}
}

// InferMode guesses a work mode from free text (location, title, body).
func InferMode(parts ...string) JobMode {
	blob := strings.ToLower(strings.Join(parts, " "))
	switch {
	case strings.Contains(blob, "remote"):
		return ModeRemote
	case strings.Contains(blob, "hybrid"):
		return ModeHybrid
	case strings.Contains(blob, "on-site") || strings.Contains(blob, "onsite") || strings.Contains(blob, "on site"):
		return ModeOnsite
	default:
		return ModeUnknown
	}
}

type JobStatus string

const (
	StatusNotApplied JobStatus = "Not Applied"
	StatusApplied    JobStatus = "Applied"
	StatusRejected   JobStatus = "Rejected"
	StatusSelected   JobStatus = "Selected"
)

// ParseStatus validates external text as an application status. Writes must
// check ok; reads of an absent status default to Not Applied.
func ParseStatus(s string) (JobStatus, bool) {
	switch JobStatus(strings.TrimSpace(s)) {
	case StatusNotApplied:
		return StatusNotApplied, true
	case StatusApplied:
		return StatusApplied, true
	case StatusRejected:
		return StatusRejected, true
	case StatusSelected:
		return StatusSelected, true
	default:
		return StatusNotApplied, false
	}
}

func (s JobStatus) Valid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

type SortKey string

const (
	SortLatest     SortKey = "Latest"
	SortMatchScore SortKey = "Match Score"
	SortOldest     SortKey = "Oldest"
	SortCompanyAZ  SortKey = "Company A-Z"

	// SortNone leaves the filtered order untouched.
	SortNone SortKey = ""
)

// ParseSortKey maps external text to a sort key. Empty input defaults to
// Latest; unrecognized input means "no reordering", not an error.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.TrimSpace(s)) {
	case "":
		return SortLatest
	case SortLatest:
		return SortLatest
	case SortMatchScore:
		return SortMatchScore
	case SortOldest:
		return SortOldest
	case SortCompanyAZ:
		return SortCompanyAZ
	default:
		return SortNone
	}
}
