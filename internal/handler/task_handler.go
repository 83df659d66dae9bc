package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"contribhub/internal/model"
	"contribhub/internal/repository"
	"contribhub/internal/tasks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskSource loads the root task collection.
type TaskSource interface {
	Tasks(ctx context.Context) (tasks.Tasks, error)
}

type ProjectManagerFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectManager, error)
}

// IssueFinderFunc builds an issue lookup authenticated with a provider token.
type IssueFinderFunc func(ctx context.Context, token string) model.IssueFinder

type TaskHandler struct {
	source   TaskSource
	managers ProjectManagerFinder
	issues   IssueFinderFunc
}

func NewTaskHandler(source TaskSource, managers ProjectManagerFinder, issues IssueFinderFunc) *TaskHandler {
	return &TaskHandler{
		source:   source,
		managers: managers,
		issues:   issues,
	}
}

// TaskQuery narrows the listed tasks. Filters apply in order: project,
// contributor, contract (project + contributor + role), unassigned.
type TaskQuery struct {
	Project     string `form:"project"`
	Contributor string `form:"contributor"`
	Role        string `form:"role" binding:"omitempty,role"`
	Provider    string `form:"provider" binding:"omitempty,provider"`
	Unassigned  bool   `form:"unassigned"`
}

type TaskLookupQuery struct {
	Repo     string `form:"repo" binding:"required"`
	IssueID  string `form:"issue_id" binding:"required"`
	Provider string `form:"provider" binding:"omitempty,provider"`
}

type RegisterTaskRequest struct {
	RepoFullName string `json:"repo_full_name" binding:"required"`
	Provider     string `json:"provider" binding:"required,provider"`
	IssueID      string `json:"issue_id" binding:"required"`
	Title        string `json:"title"`
	PullRequest  bool   `json:"pull_request"`
}

type TaskResponse struct {
	IssueID        string  `json:"issue_id"`
	RepoFullName   string  `json:"repo_full_name"`
	Provider       string  `json:"provider"`
	Role           string  `json:"role"`
	Assignee       *string `json:"assignee,omitempty"`
	AssignmentDate *string `json:"assignment_date,omitempty"`
	Deadline       *string `json:"deadline,omitempty"`
	IssueTitle     *string `json:"issue_title,omitempty"`
	IssueState     *string `json:"issue_state,omitempty"`
}

func toTaskResponse(task *model.Task) TaskResponse {
	project := task.Project()
	resp := TaskResponse{
		IssueID:      task.IssueID(),
		RepoFullName: project.RepoFullName,
		Provider:     project.Provider,
		Role:         string(task.Role()),
	}
	if assignee := task.Assignee(); assignee != nil {
		username := assignee.Username
		assignment := task.AssignmentDate().Format(time.RFC3339)
		deadline := task.Deadline().Format(time.RFC3339)
		resp.Assignee = &username
		resp.AssignmentDate = &assignment
		resp.Deadline = &deadline
	}
	return resp
}

// narrow applies q to all.
func narrow(all tasks.Tasks, q TaskQuery) (tasks.Tasks, error) {
	provider := q.Provider
	if provider == "" {
		provider = model.ProviderGithub
	}

	var err error
	scoped := all
	if q.Project != "" {
		if scoped, err = scoped.OfProject(q.Project, provider); err != nil {
			return nil, err
		}
	}
	if q.Contributor != "" {
		if scoped, err = scoped.OfContributor(q.Contributor, provider); err != nil {
			return nil, err
		}
	}
	if q.Role != "" {
		if q.Project == "" || q.Contributor == "" {
			return nil, errRoleNeedsContract
		}
		role, err := model.ParseRole(q.Role)
		if err != nil {
			return nil, err
		}
		id := model.ContractID{
			RepoFullName:        q.Project,
			ContributorUsername: q.Contributor,
			Provider:            provider,
			Role:                role,
		}
		if scoped, err = scoped.OfContract(id); err != nil {
			return nil, err
		}
	}
	if q.Unassigned {
		if scoped, err = scoped.Unassigned(); err != nil {
			return nil, err
		}
	}
	return scoped, nil
}

var errRoleNeedsContract = errors.New("role filter needs both project and contributor")

// List returns the tasks matching the query
// @Summary  List tasks
// @Tags     Tasks
// @Security BearerAuth
// @Produce  json
// @Param    project     query string false "Repository full name"
// @Param    contributor query string false "Contributor username"
// @Param    role        query string false "Contract role, needs project and contributor"
// @Param    provider    query string false "Provider, github by default"
// @Param    unassigned  query bool   false "Only unassigned tasks"
// @Success  200 {array} TaskResponse
// @Router   /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	var q TaskQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
		return
	}

	all, err := h.source.Tasks(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to load tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	scoped, err := narrow(all, q)
	if err != nil {
		// Scope errors are refused narrowings, the caller asked for a contradiction.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response := make([]TaskResponse, 0, scoped.Len())
	for task := range scoped.All() {
		response = append(response, toTaskResponse(task))
	}
	c.JSON(http.StatusOK, response)
}

// GetByID finds one task and resolves its issue at the provider
// @Summary  Find a task by issue
// @Tags     Tasks
// @Security BearerAuth
// @Produce  json
// @Param    repo     query string true  "Repository full name"
// @Param    issue_id query string true  "Issue id"
// @Param    provider query string false "Provider, github by default"
// @Success  200 {object} TaskResponse
// @Failure  404 {object} map[string]string
// @Router   /tasks/lookup [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	var q TaskLookupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
		return
	}
	if q.Provider == "" {
		q.Provider = model.ProviderGithub
	}

	all, err := h.source.Tasks(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to load tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	task := all.GetByID(q.IssueID, q.Repo, q.Provider)
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	response := toTaskResponse(task)
	if issue := h.resolveIssue(c.Request.Context(), task); issue != nil {
		response.IssueTitle = &issue.Title
		response.IssueState = &issue.State
	}
	c.JSON(http.StatusOK, response)
}

// resolveIssue looks the issue up with the token of the project's manager.
// Failures only cost the issue details.
func (h *TaskHandler) resolveIssue(ctx context.Context, task *model.Task) *model.Issue {
	project := task.Project()
	pm, err := h.managers.GetByID(ctx, project.ManagerID)
	if err != nil || pm == nil {
		zap.L().Warn("no project manager to resolve issue",
			zap.String("project", project.String()), zap.Error(err))
		return nil
	}
	issue, err := task.Issue(ctx, h.issues(ctx, pm.AccessToken))
	if err != nil {
		zap.L().Warn("failed to resolve issue",
			zap.String("project", project.String()),
			zap.String("issue", task.IssueID()),
			zap.Error(err))
		return nil
	}
	return issue
}

// Register creates an unassigned task for an issue
// @Summary  Register an issue as a task
// @Tags     Tasks
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    request body RegisterTaskRequest true "Issue"
// @Success  201 {object} TaskResponse
// @Failure  404 {object} map[string]string
// @Failure  409 {object} map[string]string
// @Router   /tasks [post]
func (h *TaskHandler) Register(c *gin.Context) {
	var req RegisterTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	all, err := h.source.Tasks(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to load tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	task, err := all.Register(c.Request.Context(), model.Issue{
		ID:           req.IssueID,
		RepoFullName: req.RepoFullName,
		Provider:     req.Provider,
		Title:        req.Title,
		PullRequest:  req.PullRequest,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, toTaskResponse(task))
	case errors.Is(err, tasks.ErrInvalidIssue), errors.Is(err, tasks.ErrUnsupportedScope):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, tasks.ErrProjectNotFound), errors.Is(err, repository.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	case errors.Is(err, tasks.ErrAlreadyRegistered):
		c.JSON(http.StatusConflict, gin.H{"error": "Task already registered"})
	default:
		zap.L().Error("failed to register task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register task"})
	}
}
