package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ideahub-dev/ideahub/internal/store"
	"github.com/ideahub-dev/ideahub/internal/types"
)

type TodoItemInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
}

type ProjectElementInput struct {
	Data     string `json:"data" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Position *int   `json:"position"`
}

type CreateProjectRequest struct {
	Name     string                `json:"name" binding:"required"`
	Todos    []TodoItemInput       `json:"todo"`
	Elements []ProjectElementInput `json:"element"`
}

// Pointers distinguish "replace with this list" from "leave untouched".
type UpdateProjectRequest struct {
	Todos    *[]TodoItemInput       `json:"todo"`
	Elements *[]ProjectElementInput `json:"element"`
}

type AddOwnerRequest struct {
	ID string `json:"id" binding:"required"`
}

type ProjectHandler struct {
	projects *store.ProjectStore
}

func NewProjectHandler(projects *store.ProjectStore) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// GET /project/:project_id
func (h *ProjectHandler) GetProject(ctx *gin.Context) {
	id, err := parseID(ctx.Param("project_id"))

	if err != nil {
		badRequest(ctx, "invalid project id")
		return
	}

	project, err := h.projects.GetByID(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectResponse(project))
}

// GET /user/project/:external_id
func (h *ProjectHandler) ListUserProjects(ctx *gin.Context) {
	projects, err := h.projects.ListByOwner(ctx.Param("external_id"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectListResponse(projects))
}

// GET /user/project/:external_id/:project_name
func (h *ProjectHandler) GetUserProjectByName(ctx *gin.Context) {
	project, err := h.projects.GetByOwnerAndName(ctx.Param("external_id"), ctx.Param("project_name"))

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectResponse(project))
}

// POST /create/:external_owner_id
func (h *ProjectHandler) CreateProject(ctx *gin.Context) {
	var body CreateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		badRequest(ctx, "invalid request")
		return
	}

	project, err := h.projects.Create(
		ctx.Param("external_owner_id"),
		body.Name,
		todoParams(body.Todos),
		elementParams(body.Elements),
	)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, types.NewProjectResponse(project))
}

// POST /update/:project_id
func (h *ProjectHandler) UpdateProject(ctx *gin.Context) {
	id, err := parseID(ctx.Param("project_id"))

	if err != nil {
		badRequest(ctx, "invalid project id")
		return
	}

	var body UpdateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		badRequest(ctx, "invalid request")
		return
	}

	var todos *[]store.TodoItemParams

	if body.Todos != nil {
		params := todoParams(*body.Todos)
		todos = &params
	}

	var elements *[]store.ElementParams

	if body.Elements != nil {
		params := elementParams(*body.Elements)
		elements = &params
	}

	project, err := h.projects.Update(id, todos, elements)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectResponse(project))
}

// POST /adduser/:project_id
func (h *ProjectHandler) AddOwner(ctx *gin.Context) {
	id, err := parseID(ctx.Param("project_id"))

	if err != nil {
		badRequest(ctx, "invalid project id")
		return
	}

	var body AddOwnerRequest

	if err := ctx.BindJSON(&body); err != nil {
		badRequest(ctx, "invalid request")
		return
	}

	project, err := h.projects.AddOwner(id, body.ID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectResponse(project))
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)

	if err != nil {
		return 0, err
	}

	return uint(id), nil
}

func todoParams(inputs []TodoItemInput) []store.TodoItemParams {
	params := make([]store.TodoItemParams, 0, len(inputs))

	for _, input := range inputs {
		params = append(params, store.TodoItemParams{
			Title:       input.Title,
			Description: input.Description,
			DueDate:     input.DueDate,
		})
	}

	return params
}

func elementParams(inputs []ProjectElementInput) []store.ElementParams {
	params := make([]store.ElementParams, 0, len(inputs))

	for _, input := range inputs {
		params = append(params, store.ElementParams{
			Data:     input.Data,
			Type:     input.Type,
			Position: input.Position,
		})
	}

	return params
}
