package checklist

import (
	"fmt"
	"strings"

	"jobtracker-engine/internal/domain"
)

// Step is one entry in the proof page's completion summary.
type Step struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Inputs carries the state the gate derives from. The caller assembles it
// fresh on every evaluation; nothing here is cached.
type Inputs struct {
	Prefs        domain.Preferences
	HistoryLen   int
	DigestExists bool
	Checklist    map[string]bool
	Links        Links
}

// Steps derives the ordered completion list. Pure view over the inputs.
func Steps(in Inputs) []Step {
	allTests := AllPassed(in.Checklist)
	allLinks := in.Links.AllProvided()
	return []Step{
		{ID: 1, Text: "Landing Page Setup", Completed: true},
		{ID: 2, Text: "User Preferences Form", Completed: len(in.Prefs.RoleKeywords) > 0 || len(in.Prefs.PreferredLocations) > 0},
		{ID: 3, Text: "Match Reasoning Engine", Completed: true},
		{ID: 4, Text: "Job Status Tracking", Completed: in.HistoryLen > 0},
		{ID: 5, Text: "Daily Digest Generation", Completed: in.DigestExists},
		{ID: 6, Text: "Verification Checklist (10/10)", Completed: allTests},
		{ID: 7, Text: "Proof Collection (Artifact Links)", Completed: allLinks},
		{ID: 8, Text: "Final Shipment Readiness", Completed: allTests && allLinks},
	}
}

type ProgressState string

const (
	ProgressNotStarted ProgressState = "Not Started"
	ProgressInProgress ProgressState = "In Progress"
	ProgressShipped    ProgressState = "Shipped"
)

// Progress summarizes the proof page badge.
func Progress(in Inputs) ProgressState {
	allTests := AllPassed(in.Checklist)
	allLinks := in.Links.AllProvided()
	if allTests && allLinks {
		return ProgressShipped
	}

	started := PassedCount(in.Checklist) > 0 || allLinks
	for _, s := range Steps(in) {
		if s.ID > 1 && s.Completed {
			started = true
			break
		}
	}
	if started {
		return ProgressInProgress
	}
	return ProgressNotStarted
}

// Submission formats the final-submission text. Callers must ensure all
// three links are provided first.
func Submission(l Links) (string, error) {
	if !l.AllProvided() {
		return "", fmt.Errorf("all 3 proof links are required for the final submission")
	}
	rule := strings.Repeat("-", 42)
	lines := []string{
		rule,
		"Job Notification Tracker — Final Submission",
		"",
		"Lovable Project:",
		l.Lovable,
		"",
		"GitHub Repository:",
		l.GitHub,
		"",
		"Live Deployment:",
		l.Deploy,
		"",
		"Core Features:",
		"- Intelligent match scoring",
		"- Daily digest simulation",
		"- Status tracking",
		"- Test checklist enforced",
		rule,
	}
	return strings.Join(lines, "\n"), nil
}
