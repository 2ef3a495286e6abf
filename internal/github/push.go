// Package github creates a repository for a generated project and pushes
// its files through the GitHub contents API.
package github

import (
	"context"
	"fmt"
	"strings"

	gogithub "github.com/google/go-github/v66/github"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// PushResult is the collaborator contract returned to the API layer and
// echoed verbatim in the response body.
type PushResult struct {
	Success  bool   `json:"success"`
	RepoURL  string `json:"repo_url,omitempty"`
	RepoName string `json:"repo_name,omitempty"`
	Username string `json:"username,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Pusher is implemented by Manager; handlers depend on the interface so
// tests can substitute a fake.
type Pusher interface {
	CreateAndPush(ctx context.Context, description string, files map[string]string) *PushResult
}

// Manager talks to the GitHub API on behalf of the configured token's user.
type Manager struct {
	client *gogithub.Client
	log    *zap.Logger
}

func NewManager(token string, log *zap.Logger) *Manager {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Manager{
		client: gogithub.NewClient(oauth2.NewClient(context.Background(), ts)),
		log:    log,
	}
}

// CreateAndPush creates a new repository named after the description and
// commits every generated file. Failures are reported in the result rather
// than as an error so the caller has one shape to forward; this mirrors the
// external contract of the push collaborator.
func (m *Manager) CreateAndPush(ctx context.Context, description string, files map[string]string) *PushResult {
	repoName := repoNameFor(description)

	user, _, err := m.client.Users.Get(ctx, "")
	if err != nil {
		return &PushResult{Error: fmt.Sprintf("authenticate with GitHub: %v", err)}
	}
	username := user.GetLogin()

	repo := &gogithub.Repository{
		Name:        gogithub.String(repoName),
		Description: gogithub.String("AI-generated website: " + truncate(description, 120)),
		Private:     gogithub.Bool(false),
		AutoInit:    gogithub.Bool(false),
	}
	created, _, err := m.client.Repositories.Create(ctx, "", repo)
	if err != nil {
		return &PushResult{Error: fmt.Sprintf("create repository: %v", err)}
	}
	m.log.Info("created repository",
		zap.String("repo", repoName), zap.String("user", username))

	for path, content := range files {
		opts := &gogithub.RepositoryContentFileOptions{
			Message: gogithub.String("Add " + path),
			Content: []byte(content),
		}
		_, _, err := m.client.Repositories.CreateFile(ctx, username, repoName, path, opts)
		if err != nil {
			return &PushResult{Error: fmt.Sprintf("push file %s: %v", path, err)}
		}
	}
	m.log.Info("pushed generated files",
		zap.String("repo", repoName), zap.Int("file_count", len(files)))

	return &PushResult{
		Success:  true,
		RepoURL:  created.GetHTMLURL(),
		RepoName: repoName,
		Username: username,
	}
}

// repoNameFor derives a unique repository name from the description: up to
// four slugified words plus a short uuid suffix.
func repoNameFor(description string) string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(description)) {
		var b strings.Builder
		for _, r := range w {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			words = append(words, b.String())
		}
		if len(words) == 4 {
			break
		}
	}
	slug := strings.Join(words, "-")
	if slug == "" {
		slug = "site"
	}
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return "ai-website-" + slug + "-" + suffix
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
