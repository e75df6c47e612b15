package report

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match/internal/githubstats"
)

func sampleProfile() *githubstats.Profile {
	return &githubstats.Profile{
		Login: "octocat",
		Repositories: []githubstats.RepoStats{
			{Name: "api", PrimaryLanguage: "Go", Commits: 40, PullRequests: 5, Workflows: 2},
			{Name: "web", PrimaryLanguage: "TypeScript", Commits: 12, PullRequests: 3},
			{Name: "forked-lib", PrimaryLanguage: "Go", Fork: true, Commits: 1},
		},
		LanguageBytes: map[string]int64{
			"Go":         120000,
			"TypeScript": 45000,
			"CSS":        3000,
		},
		Summary: githubstats.SummaryStats{
			TotalRepositories: 3,
			TotalCommits:      53,
			TotalPullRequests: 8,
			TotalWorkflows:    2,
		},
	}
}

func TestGenerateWritesPDF(t *testing.T) {
	path, err := Generate(Input{
		Profile:     sampleProfile(),
		Rating:      7.42,
		Salary:      18.3,
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	defer os.Remove(path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	header := make([]byte, 4)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(header)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(header))
}

func TestGenerateEmptyProfile(t *testing.T) {
	path, err := Generate(Input{
		Profile:     &githubstats.Profile{Login: "octocat", LanguageBytes: map[string]int64{}},
		GeneratedAt: time.Now(),
	})
	require.NoError(t, err)
	defer os.Remove(path)
}

func TestSkillCountsSkipsEmptyLanguage(t *testing.T) {
	counts := skillCounts([]githubstats.RepoStats{
		{PrimaryLanguage: "Go"},
		{PrimaryLanguage: "Go"},
		{PrimaryLanguage: ""},
	})
	assert.Equal(t, map[string]int{"Go": 2}, counts)
}

func TestOwnedLanguageBytesFiltersForkOnlyLanguages(t *testing.T) {
	all := map[string]int64{"Go": 100, "Ruby": 50}
	owned := []githubstats.RepoStats{
		{PrimaryLanguage: "Go", Fork: false},
		{PrimaryLanguage: "Ruby", Fork: true},
	}
	filtered := ownedLanguageBytes(all, ownedRepos(owned))
	assert.Equal(t, map[string]int64{"Go": 100}, filtered)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512.0 B", formatBytes(512))
	assert.Equal(t, "1.5 KB", formatBytes(1536))
	assert.Equal(t, "2.0 MB", formatBytes(2*1024*1024))
}
