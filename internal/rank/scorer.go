package rank

import (
	"strings"

	"jobtracker-engine/internal/domain"
)

// Point weights for the additive match rules. Matching is lower-cased
// substring containment per term, not tokenized.
const (
	pointsTitle       = 25
	pointsDescription = 15
	pointsLocation    = 15
	pointsMode        = 10
	pointsExperience  = 10
	pointsSkill       = 15
	pointsFresh       = 5
	pointsLinkedIn    = 5

	maxScore       = 100
	freshDaysMax   = 2
	linkedInSource = "LinkedIn"
)

// Score rates how well a job fits the stated preferences, 0..100. Pure and
// deterministic. nil preferences means nothing stated and scores zero;
// empty preference lists match nothing.
func Score(job domain.Job, prefs *domain.Preferences) int {
	if prefs == nil {
		return 0
	}

	title := strings.ToLower(job.Title)
	desc := strings.ToLower(job.Description)
	loc := strings.ToLower(job.Location)

	score := 0
	if anyContains(title, prefs.RoleKeywords) {
		score += pointsTitle
	}
	if anyContains(desc, prefs.RoleKeywords) {
		score += pointsDescription
	}
	if anyContains(loc, prefs.PreferredLocations) {
		score += pointsLocation
	}
	if prefs.WantsMode(job.Mode) {
		score += pointsMode
	}
	if prefs.ExperienceLevel != "" && prefs.ExperienceLevel == job.Experience {
		score += pointsExperience
	}
	if skillOverlap(job.Skills, prefs.Skills) {
		score += pointsSkill
	}
	if job.PostedDaysAgo <= freshDaysMax {
		score += pointsFresh
	}
	if job.Source == linkedInSource {
		score += pointsLinkedIn
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

// ScoreAll annotates every job with its score, leaving the input untouched.
func ScoreAll(jobs []domain.Job, prefs *domain.Preferences) []domain.ScoredJob {
	out := make([]domain.ScoredJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, domain.ScoredJob{Job: j, Score: Score(j, prefs)})
	}
	return out
}

func anyContains(haystack string, needles []string) bool {
	for _, n := range needles {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func skillOverlap(jobSkills, userSkills []string) bool {
	if len(jobSkills) == 0 || len(userSkills) == 0 {
		return false
	}
	have := make(map[string]bool, len(jobSkills))
	for _, s := range jobSkills {
		have[strings.ToLower(s)] = true
	}
	for _, s := range userSkills {
		if have[strings.ToLower(s)] {
			return true
		}
	}
	return false
}
