package githubstats

import "math"

const (
	maxCommits   = 50
	maxRepos     = 20
	maxWorkflows = 100
	maxPRs       = 10

	commitWeight   = 0.35
	repoWeight     = 0.25
	workflowWeight = 0.20
	prWeight       = 0.20
)

// normalize maps a raw count onto 0-10 on a log scale, saturating at
// the metric's cap.
func normalize(value, cap int) float64 {
	scaled := math.Log(float64(value)+1) / math.Log(float64(cap)+1) * 10
	return math.Min(scaled, 10)
}

// Rating scores the aggregated activity on a 0-10 scale.
func Rating(summary SummaryStats) float64 {
	rating := normalize(summary.TotalCommits, maxCommits)*commitWeight +
		normalize(summary.TotalRepositories, maxRepos)*repoWeight +
		normalize(summary.TotalWorkflows, maxWorkflows)*workflowWeight +
		normalize(summary.TotalPullRequests, maxPRs)*prWeight
	return math.Min(rating, 10)
}

// SalaryFor maps a rating linearly into the [minSalary, maxSalary]
// range.
func SalaryFor(rating, minSalary, maxSalary float64) float64 {
	return minSalary + (maxSalary-minSalary)*(rating/10)
}
