package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webgen_server/internal/ai"
	"webgen_server/internal/github"
	"webgen_server/internal/prompts"
	"webgen_server/internal/structures"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	aiClient ai.Client
	prompts  *prompts.Builder
	pusher   github.Pusher
	log      *zap.Logger
}

func NewAPIHandler(aiClient ai.Client, promptBuilder *prompts.Builder, pusher github.Pusher, log *zap.Logger) *APIHandler {
	return &APIHandler{
		aiClient: aiClient,
		prompts:  promptBuilder,
		pusher:   pusher,
		log:      log,
	}
}

// --- Structs for API Requests/Responses ---

// GenerateRequest is the body of POST /generate-website.
type GenerateRequest struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}

// PushRequest is the body of POST /generate-and-push-to-github: generation
// input plus optional branding, social and contact fields.
type PushRequest struct {
	Description string `json:"description"`
	Type        string `json:"type"`

	CompanyName    string `json:"company_name"`
	Tagline        string `json:"tagline"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`

	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	Facebook  string `json:"facebook"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

type structureSummary struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	FilesCount  int    `json:"files_count"`
	HasBackend  bool   `json:"has_backend"`
	HasDatabase bool   `json:"has_database"`
}

// validateRequest normalizes description and type, writing the appropriate
// 400 response on failure. The second return is false when the request was
// rejected.
func (h *APIHandler) validateRequest(c *gin.Context, description, projectType string) (string, string, bool) {
	description = strings.TrimSpace(description)
	if description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Description is required"})
		return "", "", false
	}

	projectType = strings.ToLower(strings.TrimSpace(projectType))
	if projectType == "" {
		projectType = "vanilla"
	}
	if projectType != "vanilla" && projectType != "react" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": `Type must be either "vanilla" or "react"`})
		return "", "", false
	}
	return description, projectType, true
}

// generateFiles runs prompt → LLM → parse, writing the 500 response itself
// on failure. Returns nil when the request is already answered.
func (h *APIHandler) generateFiles(c *gin.Context, endpoint, prompt string) map[string]string {
	raw, err := h.aiClient.Generate(c.Request.Context(), prompt)
	if err != nil {
		h.log.Error("generation call failed", zap.String("endpoint", endpoint), zap.Error(err))
		generationRequests.WithLabelValues(endpoint, "generation_error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return nil
	}

	files := ai.ParseFiles(raw)
	if len(files) == 0 {
		h.log.Error("no files parsed from AI response", zap.String("endpoint", endpoint), zap.Int("response_len", len(raw)))
		parseFailures.Inc()
		generationRequests.WithLabelValues(endpoint, "parse_error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to parse files from AI response"})
		return nil
	}
	return files
}

// --- API Handlers ---

// GET /health
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "AI Website Generator API is running",
	})
}

// POST /generate-website
func (h *APIHandler) GenerateWebsite(c *gin.Context) {
	const endpoint = "generate-website"

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		generationRequests.WithLabelValues(endpoint, "invalid_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}

	description, projectType, ok := h.validateRequest(c, req.Description, req.Type)
	if !ok {
		generationRequests.WithLabelValues(endpoint, "invalid_request").Inc()
		return
	}

	h.log.Info("generating project",
		zap.String("type", projectType), zap.String("description", description))

	var prompt string
	if projectType == "vanilla" {
		prompt = h.prompts.Vanilla(description, nil)
	} else {
		prompt = h.prompts.React(description, nil)
	}

	files := h.generateFiles(c, endpoint, prompt)
	if files == nil {
		return
	}

	h.log.Info("generation complete", zap.Int("file_count", len(files)))
	generationRequests.WithLabelValues(endpoint, "success").Inc()
	generatedFiles.Observe(float64(len(files)))

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"project_type": projectType,
		"files":        files,
		"file_count":   len(files),
	})
}

// POST /generate-and-push-to-github
func (h *APIHandler) GenerateAndPush(c *gin.Context) {
	const endpoint = "generate-and-push-to-github"

	var req PushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		generationRequests.WithLabelValues(endpoint, "invalid_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}

	description, projectType, ok := h.validateRequest(c, req.Description, req.Type)
	if !ok {
		generationRequests.WithLabelValues(endpoint, "invalid_request").Inc()
		return
	}

	cust := &prompts.Customization{
		Branding: prompts.Branding{
			CompanyName:    req.CompanyName,
			Tagline:        req.Tagline,
			PrimaryColor:   req.PrimaryColor,
			SecondaryColor: req.SecondaryColor,
		},
		Social: prompts.SocialMedia{
			Instagram: req.Instagram,
			Twitter:   req.Twitter,
			LinkedIn:  req.LinkedIn,
			Facebook:  req.Facebook,
			Email:     req.Email,
			Phone:     req.Phone,
		},
		Contact: prompts.Contact{
			Address: req.Address,
			City:    req.City,
			State:   req.State,
		},
	}

	info := structures.DetermineStructure(description)
	h.log.Info("structure detected",
		zap.String("structure", string(info.Type)),
		zap.Int("manifest_files", len(info.Files)),
		zap.Bool("needs_backend", info.NeedsBackend),
		zap.Bool("needs_database", info.NeedsDatabase))

	var prompt string
	if projectType == "react" {
		prompt = h.prompts.React(description, cust)
	} else {
		prompt = h.prompts.Structured(description, info, cust)
	}

	files := h.generateFiles(c, endpoint, prompt)
	if files == nil {
		return
	}
	h.log.Info("generation complete", zap.Int("file_count", len(files)))

	result := h.pusher.CreateAndPush(c.Request.Context(), description, files)
	if !result.Success {
		h.log.Error("GitHub push failed", zap.String("error", result.Error))
		generationRequests.WithLabelValues(endpoint, "push_error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "GitHub error: " + result.Error})
		return
	}
	h.log.Info("pushed to GitHub", zap.String("repo_url", result.RepoURL))

	generationRequests.WithLabelValues(endpoint, "success").Inc()
	generatedFiles.Observe(float64(len(files)))

	branding := cust.Branding.WithDefaults()
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"project_type": projectType,
		"structure": structureSummary{
			Type:        string(info.Type),
			Description: info.Description,
			FilesCount:  len(files),
			HasBackend:  info.NeedsBackend,
			HasDatabase: info.NeedsDatabase,
		},
		"files":      files,
		"file_count": len(files),
		"github":     result,
		"customization": gin.H{
			"branding": gin.H{
				"company_name":    branding.CompanyName,
				"tagline":         branding.Tagline,
				"primary_color":   branding.PrimaryColor,
				"secondary_color": branding.SecondaryColor,
			},
			"social_media": nonEmpty(map[string]string{
				"instagram": req.Instagram,
				"twitter":   req.Twitter,
				"linkedin":  req.LinkedIn,
				"facebook":  req.Facebook,
				"email":     req.Email,
				"phone":     req.Phone,
			}),
			"contact": nonEmpty(map[string]string{
				"address": req.Address,
				"city":    req.City,
				"state":   req.State,
			}),
		},
		"message": info.Description + " generated and pushed to GitHub!",
	})
}

// nonEmpty drops empty values so optional fields are omitted from responses.
func nonEmpty(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v != "" {
			out[k] = v
		}
	}
	return out
}
