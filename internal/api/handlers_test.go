package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webgen_server/internal/ai"
	"webgen_server/internal/github"
	"webgen_server/internal/logger"
	"webgen_server/internal/prompts"
)

const vanillaResponse = "FILE: index.html\n```html\n<h1>Hi</h1>\n```\n" +
	"FILE: style.css\n```css\nh1 { color: blue; }\n```\n" +
	"FILE: script.js\n```javascript\nconsole.log('hi');\n```\n"

type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

type fakePusher struct {
	result      *github.PushResult
	description string
	files       map[string]string
}

func (f *fakePusher) CreateAndPush(_ context.Context, description string, files map[string]string) *github.PushResult {
	f.description = description
	f.files = files
	return f.result
}

func newTestRouter(t *testing.T, client ai.Client, pusher github.Pusher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAPIHandler(client, prompts.NewBuilder(nil), pusher, logger.NewTestLogger(t))
	router := gin.New()
	RegisterRoutes(router, h)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &fakeClient{}, &fakePusher{})
	w, body := doJSON(t, router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "AI Website Generator API is running", body["message"])
}

func TestGenerateWebsiteEmptyDescription(t *testing.T) {
	router := newTestRouter(t, &fakeClient{}, &fakePusher{})
	w, body := doJSON(t, router, http.MethodPost, "/generate-website",
		`{"description":"","type":"vanilla"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Description is required", body["error"])
}

func TestGenerateWebsiteInvalidType(t *testing.T) {
	router := newTestRouter(t, &fakeClient{}, &fakePusher{})
	w, body := doJSON(t, router, http.MethodPost, "/generate-website",
		`{"description":"todo app","type":"spa"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "vanilla")
}

func TestGenerateWebsiteMissingBody(t *testing.T) {
	router := newTestRouter(t, &fakeClient{}, &fakePusher{})
	w, body := doJSON(t, router, http.MethodPost, "/generate-website", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No data provided", body["error"])
}

func TestGenerateWebsiteSuccess(t *testing.T) {
	client := &fakeClient{response: vanillaResponse}
	router := newTestRouter(t, client, &fakePusher{})
	w, body := doJSON(t, router, http.MethodPost, "/generate-website",
		`{"description":"a coffee shop site","type":"vanilla"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "vanilla", body["project_type"])
	assert.Equal(t, float64(3), body["file_count"])

	files := body["files"].(map[string]any)
	assert.Equal(t, "<h1>Hi</h1>", files["index.html"])

	// The vanilla prompt, not the react one, was composed.
	assert.Contains(t, client.prompt, "professional website based on: a coffee shop site")
}

func TestGenerateWebsiteDefaultsToVanilla(t *testing.T) {
	client := &fakeClient{response: vanillaResponse}
	router := newTestRouter(t, client, &fakePusher{})
	w, body := doJSON(t, router, http.MethodPost, "/generate-website",
		`{"description":"a coffee shop site"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "vanilla", body["project_type"])
}

func TestGenerateWebsiteReactPrompt(t *testing.T) {
	client := &fakeClient{response: vanillaResponse}
	router := newTestRouter(t, client, &fakePusher{})
	_, _ = doJSON(t, router, http.MethodPost, "/generate-website",
		`{"description":"a weather app","type":"react"}`)

	assert.Contains(t, client.prompt, "React application based on: a weather app")
}

func TestGenerateWebsiteParseFailure(t *testing.T) {
	client := &fakeClient{response: "Sorry, I can't help with that."}
	router := newTestRouter(t, client, &fakePusher{})
	w, body := doJSON(t, router, http.MethodPost, "/generate-website",
		`{"description":"todo app","type":"vanilla"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to parse files from AI response", body["error"])
}

func TestGenerateWebsiteGenerationError(t *testing.T) {
	client := &fakeClient{err: ai.ErrEmptyResponse}
	router := newTestRouter(t, client, &fakePusher{})
	w, body := doJSON(t, router, http.MethodPost, "/generate-website",
		`{"description":"todo app","type":"vanilla"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, ai.ErrEmptyResponse.Error(), body["error"])
}

func TestGenerateAndPushSuccess(t *testing.T) {
	client := &fakeClient{response: vanillaResponse}
	pusher := &fakePusher{result: &github.PushResult{
		Success:  true,
		RepoURL:  "https://github.com/octo/ai-website-shop-1234abcd",
		RepoName: "ai-website-shop-1234abcd",
		Username: "octo",
	}}
	router := newTestRouter(t, client, pusher)

	w, body := doJSON(t, router, http.MethodPost, "/generate-and-push-to-github",
		`{"description":"online shop for plants","type":"vanilla",
		  "company_name":"Plantify","instagram":"@plantify","city":"Oslo"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	// Classifier ran: "shop" makes this an ecommerce structure.
	structure := body["structure"].(map[string]any)
	assert.Equal(t, "ecommerce", structure["type"])
	assert.Equal(t, true, structure["has_backend"])
	assert.Equal(t, true, structure["has_database"])
	assert.Equal(t, float64(3), structure["files_count"])

	gh := body["github"].(map[string]any)
	assert.Equal(t, "https://github.com/octo/ai-website-shop-1234abcd", gh["repo_url"])
	assert.Equal(t, "octo", gh["username"])

	// Pusher received the parsed files.
	assert.Equal(t, "online shop for plants", pusher.description)
	assert.Len(t, pusher.files, 3)

	// The structured prompt carried the branding.
	assert.Contains(t, client.prompt, "Company Name: Plantify")

	cust := body["customization"].(map[string]any)
	branding := cust["branding"].(map[string]any)
	assert.Equal(t, "Plantify", branding["company_name"])

	social := cust["social_media"].(map[string]any)
	assert.Equal(t, "@plantify", social["instagram"])
	assert.NotContains(t, social, "twitter")

	contact := cust["contact"].(map[string]any)
	assert.Equal(t, "Oslo", contact["city"])
	assert.NotContains(t, contact, "address")

	assert.Equal(t, "E-commerce website with shopping cart generated and pushed to GitHub!", body["message"])
}

func TestGenerateAndPushGitHubFailure(t *testing.T) {
	client := &fakeClient{response: vanillaResponse}
	pusher := &fakePusher{result: &github.PushResult{Error: "bad credentials"}}
	router := newTestRouter(t, client, pusher)

	w, body := doJSON(t, router, http.MethodPost, "/generate-and-push-to-github",
		`{"description":"a landing page for my band","type":"vanilla"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "GitHub error: bad credentials", body["error"])
}

func TestGenerateAndPushEmptyDescription(t *testing.T) {
	router := newTestRouter(t, &fakeClient{}, &fakePusher{})
	w, body := doJSON(t, router, http.MethodPost, "/generate-and-push-to-github",
		`{"description":"  "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Description is required", body["error"])
}
