package jobs

import "jobtracker-engine/internal/domain"

// Seed returns a small built-in job list so the engine has something to
// show before the user points jobs.file at a real export.
func Seed() []domain.Job {
	return []domain.Job{
		{
			ID: "seed-1", Title: "React Developer", Company: "BrightApps",
			Location: "Bengaluru", Mode: domain.ModeRemote, Experience: "1-3 years",
			Skills: []string{"React", "TypeScript", "CSS"},
			Description: "Build and ship React features for a consumer dashboard.",
			SalaryRange: "₹8-14 LPA", PostedDaysAgo: 1, Source: "LinkedIn",
			ApplyURL: "https://example.com/jobs/react-developer",
		},
		{
			ID: "seed-2", Title: "Frontend Engineer", Company: "Zenlytics",
			Location: "Remote", Mode: domain.ModeRemote, Experience: "3-5 years",
			Skills: []string{"React", "Next.js"},
			Description: "Own the web experience end to end, from design review to release.",
			SalaryRange: "₹18-26 LPA", PostedDaysAgo: 0, Source: "Naukri",
			ApplyURL: "https://example.com/jobs/frontend-engineer",
		},
		{
			ID: "seed-3", Title: "Backend Engineer (Go)", Company: "Cloudloom",
			Location: "Hyderabad", Mode: domain.ModeHybrid, Experience: "3-5 years",
			Skills: []string{"Go", "PostgreSQL", "Kubernetes"},
			Description: "Design APIs and storage for a multi-tenant SaaS platform.",
			SalaryRange: "₹20-30 LPA", PostedDaysAgo: 3, Source: "LinkedIn",
			ApplyURL: "https://example.com/jobs/backend-go",
		},
		{
			ID: "seed-4", Title: "Full Stack Developer", Company: "Finch Labs",
			Location: "Pune", Mode: domain.ModeOnsite, Experience: "1-3 years",
			Skills: []string{"Node.js", "React", "MongoDB"},
			Description: "Work across the stack on an internal tooling suite.",
			SalaryRange: "₹10-16 LPA", PostedDaysAgo: 5, Source: "Indeed",
			ApplyURL: "https://example.com/jobs/full-stack",
		},
		{
			ID: "seed-5", Title: "Data Engineer", Company: "Quantive",
			Location: "Bengaluru", Mode: domain.ModeHybrid, Experience: "5+ years",
			Skills: []string{"Python", "Spark", "Airflow"},
			Description: "Own batch and streaming pipelines feeding the analytics stack.",
			SalaryRange: "₹28-38 LPA", PostedDaysAgo: 2, Source: "Naukri",
			ApplyURL: "https://example.com/jobs/data-engineer",
		},
		{
			ID: "seed-6", Title: "QA Automation Engineer", Company: "BrightApps",
			Location: "Chennai", Mode: domain.ModeOnsite, Experience: "1-3 years",
			Skills: []string{"Selenium", "Playwright", "JavaScript"},
			Description: "Grow the end-to-end suite covering the consumer dashboard.",
			SalaryRange: "₹7-11 LPA", PostedDaysAgo: 8, Source: "Indeed",
			ApplyURL: "https://example.com/jobs/qa-automation",
		},
	}
}
