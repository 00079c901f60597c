package domain

// Job is an externally supplied posting. The engine never mutates one;
// identity is ID, unique within a supplied collection.
type Job struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Mode          JobMode  `json:"mode"`
	Experience    string   `json:"experience"`
	Skills        []string `json:"skills"`
	Description   string   `json:"description"`
	SalaryRange   string   `json:"salaryRange"`
	PostedDaysAgo int      `json:"postedDaysAgo"`
	Source        string   `json:"source"`
	ApplyURL      string   `json:"applyUrl"`
}

// ScoredJob pairs a Job with its match score against the current
// preferences. Recomputed per call; persisted only inside digests.
type ScoredJob struct {
	Job
	Score int `json:"score"`
}
