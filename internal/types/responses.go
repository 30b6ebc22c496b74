package types

import (
	"time"

	"github.com/ideahub-dev/ideahub/internal/models"
)

// Response projections: plain serializable trees built from loaded entities.
// Projection is pure; it never touches the store.

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Projects []uint `json:"projects"`
}

type ProjectResponse struct {
	ID       uint                     `json:"id"`
	Name     string                   `json:"name"`
	Owners   []uint                   `json:"owners"`
	Todos    []TodoItemResponse       `json:"todos"`
	Elements []ProjectElementResponse `json:"elements"`
}

type TodoItemResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
	ProjectID   uint       `json:"project_id"`
}

type ProjectElementResponse struct {
	ID        uint   `json:"id"`
	Data      string `json:"data"`
	Type      string `json:"type"`
	Position  int    `json:"position"`
	ProjectID uint   `json:"project_id"`
}

func NewUserResponse(user *models.User) UserResponse {
	projects := make([]uint, 0, len(user.Projects))

	for _, project := range user.Projects {
		projects = append(projects, project.ID)
	}

	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Projects: projects,
	}
}

func NewProjectResponse(project *models.Project) ProjectResponse {
	owners := make([]uint, 0, len(project.Owners))

	for _, owner := range project.Owners {
		owners = append(owners, owner.ID)
	}

	todos := make([]TodoItemResponse, 0, len(project.Todos))

	for _, todo := range project.Todos {
		todos = append(todos, TodoItemResponse{
			ID:          todo.ID,
			Title:       todo.Title,
			Description: todo.Description,
			Completed:   todo.Completed,
			DueDate:     todo.DueDate,
			ProjectID:   todo.ProjectID,
		})
	}

	elements := make([]ProjectElementResponse, 0, len(project.Elements))

	for _, element := range project.Elements {
		elements = append(elements, ProjectElementResponse{
			ID:        element.ID,
			Data:      element.Data,
			Type:      element.Type,
			Position:  element.Position,
			ProjectID: element.ProjectID,
		})
	}

	return ProjectResponse{
		ID:       project.ID,
		Name:     project.Name,
		Owners:   owners,
		Todos:    todos,
		Elements: elements,
	}
}

func NewProjectListResponse(projects []models.Project) []ProjectResponse {
	response := make([]ProjectResponse, 0, len(projects))

	for i := range projects {
		response = append(response, NewProjectResponse(&projects[i]))
	}

	return response
}
