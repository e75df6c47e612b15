package storage

import "time"

// MatchRecord is the audit row persisted for every match request. Only the
// resume's remote URL and the outcome are stored; document contents never
// touch the database.
type MatchRecord struct {
	ID         int64     `json:"id"`
	ResumeURL  string    `json:"resume_url"`
	JobRole    string    `json:"job_role,omitempty"`
	MatchScore *float64  `json:"match_score,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReportRecord tracks a generated developer report.
type ReportRecord struct {
	ID          int64     `json:"id"`
	GitHubLogin string    `json:"github_login"`
	Rating      float64   `json:"rating"`
	ReportURL   string    `json:"report_url"`
	CreatedAt   time.Time `json:"created_at"`
}
