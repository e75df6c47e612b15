// Package githubstats aggregates a candidate's GitHub activity and
// turns it into a 0-10 rating with a suggested salary.
package githubstats

import (
	"context"
	"log"
	"regexp"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

// RepoStats summarizes one repository's activity attributed to the
// candidate.
type RepoStats struct {
	Name            string
	PrimaryLanguage string
	Fork            bool
	Commits         int
	PullRequests    int
	Workflows       int
}

type SummaryStats struct {
	TotalRepositories int
	TotalCommits      int
	TotalPullRequests int
	TotalWorkflows    int
}

// Profile is the full aggregation result for one GitHub login.
type Profile struct {
	Login         string
	Repositories  []RepoStats
	LanguageBytes map[string]int64
	Summary       SummaryStats
}

type Service struct {
	client *gh.Client
}

func NewService(ctx context.Context, token string) *Service {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	return &Service{client: gh.NewClient(oauth2.NewClient(ctx, ts))}
}

// NewServiceWithClient is used by tests to inject a client backed by a
// fake transport.
func NewServiceWithClient(client *gh.Client) *Service {
	return &Service{client: client}
}

var githubIDRe = regexp.MustCompile(`(?i)(?:GitHub:\s*([a-zA-Z0-9-]+)|https://github\.com/([a-zA-Z0-9-]+))`)

// ExtractGitHubID finds the candidate's GitHub login in resume text,
// either as a "GitHub: login" line or a profile URL.
func ExtractGitHubID(text string) (string, bool) {
	for _, match := range githubIDRe.FindAllStringSubmatch(text, -1) {
		for _, group := range match[1:] {
			if group != "" {
				return group, true
			}
		}
	}
	return "", false
}

// Aggregate collects commit, pull request, workflow and language stats
// across the login's repositories. Only activity authored by the login
// counts toward commit and PR totals.
func (s *Service) Aggregate(ctx context.Context, login string) (*Profile, error) {
	profile := &Profile{
		Login:         login,
		LanguageBytes: make(map[string]int64),
	}

	opts := &gh.RepositoryListByUserOptions{
		Type:        "all",
		ListOptions: gh.ListOptions{PerPage: 100},
	}
	var repos []*gh.Repository
	for {
		page, resp, err := s.client.Repositories.ListByUser(ctx, login, opts)
		if err != nil {
			return nil, err
		}
		repos = append(repos, page...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	profile.Summary.TotalRepositories = len(repos)

	for _, repo := range repos {
		owner := repo.GetOwner().GetLogin()
		name := repo.GetName()

		stats := RepoStats{
			Name:            name,
			PrimaryLanguage: repo.GetLanguage(),
			Fork:            repo.GetFork(),
		}

		stats.Commits = s.countCommits(ctx, owner, name, login)
		stats.PullRequests = s.countPullRequests(ctx, owner, name, login)
		stats.Workflows = s.countWorkflows(ctx, owner, name)

		languages, _, err := s.client.Repositories.ListLanguages(ctx, owner, name)
		if err != nil {
			log.Printf("[GitHubStats] Failed to fetch languages for %s/%s: %v", owner, name, err)
		} else {
			for lang, size := range languages {
				profile.LanguageBytes[lang] += int64(size)
			}
		}

		profile.Summary.TotalCommits += stats.Commits
		profile.Summary.TotalPullRequests += stats.PullRequests
		profile.Summary.TotalWorkflows += stats.Workflows
		profile.Repositories = append(profile.Repositories, stats)
	}

	log.Printf("[GitHubStats] Aggregated %d repos for %s: %d commits, %d PRs, %d workflows",
		profile.Summary.TotalRepositories, login,
		profile.Summary.TotalCommits, profile.Summary.TotalPullRequests, profile.Summary.TotalWorkflows)
	return profile, nil
}

func (s *Service) countCommits(ctx context.Context, owner, repo, author string) int {
	commits, _, err := s.client.Repositories.ListCommits(ctx, owner, repo, &gh.CommitsListOptions{
		Author:      author,
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		log.Printf("[GitHubStats] Failed to fetch commits for %s/%s: %v", owner, repo, err)
		return 0
	}
	return len(commits)
}

func (s *Service) countPullRequests(ctx context.Context, owner, repo, author string) int {
	prs, _, err := s.client.PullRequests.List(ctx, owner, repo, &gh.PullRequestListOptions{
		State:       "all",
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		log.Printf("[GitHubStats] Failed to fetch pull requests for %s/%s: %v", owner, repo, err)
		return 0
	}
	count := 0
	for _, pr := range prs {
		if pr.GetUser().GetLogin() == author {
			count++
		}
	}
	return count
}

// countWorkflows returns 0 on any error so a repo without Actions
// enabled does not fail the whole aggregation.
func (s *Service) countWorkflows(ctx context.Context, owner, repo string) int {
	workflows, _, err := s.client.Actions.ListWorkflows(ctx, owner, repo, &gh.ListOptions{PerPage: 100})
	if err != nil {
		log.Printf("[GitHubStats] Failed to fetch workflows for %s/%s: %v", owner, repo, err)
		return 0
	}
	return workflows.GetTotalCount()
}
