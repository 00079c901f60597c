package digest

import (
	"fmt"
	"strings"

	"jobtracker-engine/internal/domain"
)

const textRule = "----------------------------------------"

// FormatText renders a digest as the plain-text block consumed by the
// copy/email collaborators. The structure (title line, numbered per-job
// blocks between two rule lines, footer) is part of the interop contract.
func FormatText(jobs []domain.ScoredJob, date string) string {
	lines := []string{
		"Top 10 Jobs For You — 9AM Digest",
		"Date: " + date,
		"",
		textRule,
	}
	for i, j := range jobs {
		apply := j.ApplyURL
		if apply == "" {
			apply = "#"
		}
		lines = append(lines,
			fmt.Sprintf("%d. %s at %s", i+1, j.Title, j.Company),
			fmt.Sprintf("   Location: %s | Mode: %s", j.Location, j.Mode),
			fmt.Sprintf("   Match Score: %d/100", j.Score),
			"   Apply: "+apply,
			"",
		)
	}
	lines = append(lines, textRule, "Generated by Job Notification Tracker")
	return strings.Join(lines, "\n")
}
