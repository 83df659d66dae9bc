package handler

import (
	"context"
	"errors"
	"net/http"

	"contribhub/internal/github"
	"contribhub/internal/middleware"
	"contribhub/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserFinder interface {
	FindByUsername(ctx context.Context, username, provider string) (*model.User, error)
}

// ResourcesFunc builds provider resources authenticated with a user's token.
type ResourcesFunc func(ctx context.Context, token string) github.Resources

type OrganizationHandler struct {
	users     UserFinder
	projects  github.ProjectFinder
	resources ResourcesFunc
	baseURL   string
}

func NewOrganizationHandler(users UserFinder, projects github.ProjectFinder, resources ResourcesFunc, baseURL string) *OrganizationHandler {
	return &OrganizationHandler{
		users:     users,
		projects:  projects,
		resources: resources,
		baseURL:   baseURL,
	}
}

type OrganizationResponse struct {
	ID    string `json:"id"`
	Login string `json:"login"`
}

type RepoResponse struct {
	FullName string `json:"full_name"`
	Provider string `json:"provider"`
	Private  bool   `json:"private"`
	Active   bool   `json:"active"`
}

// organizations resolves the current user and their organizations endpoint.
func (h *OrganizationHandler) organizations(c *gin.Context) (*github.Organizations, bool) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil, false
	}
	if current.Provider != model.ProviderGithub {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organizations are only supported for github users"})
		return nil, false
	}

	user, err := h.users.FindByUsername(c.Request.Context(), current.Username, current.Provider)
	if err != nil {
		zap.L().Error("failed to find user", zap.String("username", current.Username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user information"})
		return nil, false
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil, false
	}

	orgs, err := github.NewOrganizations(h.resources(c.Request.Context(), user.AccessToken), h.baseURL, *user, h.projects)
	if err != nil {
		zap.L().Error("invalid github api url", zap.String("url", h.baseURL), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Provider misconfigured"})
		return nil, false
	}
	return orgs, true
}

func providerError(c *gin.Context, err error) {
	var statusErr *github.UnexpectedStatusError
	switch {
	case errors.Is(err, github.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &statusErr):
		zap.L().Warn("github answered unexpectedly", zap.Int("status", statusErr.Actual))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		zap.L().Error("github request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reach provider"})
	}
}

// List returns the organizations of the current user
// @Summary  List the current user's organizations
// @Tags     Organizations
// @Security BearerAuth
// @Produce  json
// @Success  200 {array} OrganizationResponse
// @Failure  401 {object} map[string]string
// @Failure  502 {object} map[string]string
// @Router   /orgs [get]
func (h *OrganizationHandler) List(c *gin.Context) {
	orgs, ok := h.organizations(c)
	if !ok {
		return
	}

	seq, err := orgs.Fetch(c.Request.Context())
	if err != nil {
		providerError(c, err)
		return
	}

	response := []OrganizationResponse{}
	for org := range seq {
		response = append(response, OrganizationResponse{ID: org.ID(), Login: org.Login()})
	}
	c.JSON(http.StatusOK, response)
}

// Repos returns the repositories of one of the current user's organizations
// @Summary  List an organization's repositories
// @Tags     Organizations
// @Security BearerAuth
// @Produce  json
// @Param    login path string true "Organization login"
// @Success  200 {array} RepoResponse
// @Failure  404 {object} map[string]string
// @Router   /orgs/{login}/repos [get]
func (h *OrganizationHandler) Repos(c *gin.Context) {
	orgs, ok := h.organizations(c)
	if !ok {
		return
	}

	seq, err := orgs.Fetch(c.Request.Context())
	if err != nil {
		providerError(c, err)
		return
	}

	login := c.Param("login")
	for org := range seq {
		if org.Login() != login {
			continue
		}
		repos, err := org.Repos(c.Request.Context())
		if err != nil {
			providerError(c, err)
			return
		}
		response := make([]RepoResponse, 0, len(repos))
		for _, repo := range repos {
			response = append(response, RepoResponse{
				FullName: repo.FullName,
				Provider: repo.Provider,
				Private:  repo.Private,
				Active:   repo.Project != nil,
			})
		}
		c.JSON(http.StatusOK, response)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
}
