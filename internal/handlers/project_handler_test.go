package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"monetra/internal/models"
	"monetra/internal/pagination"
	"monetra/internal/services"
)

// --- mock project service ---

type mockProjectService struct {
	createProjectFn   func(userID, name, currency string, status models.ProjectStatus, notes string) (*models.Project, error)
	getUserProjectsFn func(userID string, page pagination.PageRequest, status *models.ProjectStatus) (*pagination.PageResponse[models.Project], error)
	getProjectByIDFn  func(userID, projectID string) (*models.Project, error)
	updateProjectFn   func(userID, projectID, name string, status *models.ProjectStatus, notes *string) (*models.Project, error)
	deleteProjectFn   func(userID, projectID string) error
}

func (m *mockProjectService) CreateProject(userID, name, currency string, status models.ProjectStatus, notes string) (*models.Project, error) {
	if m.createProjectFn != nil {
		return m.createProjectFn(userID, name, currency, status, notes)
	}
	return &models.Project{}, nil
}

func (m *mockProjectService) GetUserProjects(userID string, page pagination.PageRequest, status *models.ProjectStatus) (*pagination.PageResponse[models.Project], error) {
	if m.getUserProjectsFn != nil {
		return m.getUserProjectsFn(userID, page, status)
	}
	resp := pagination.NewPageResponse([]models.Project{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockProjectService) GetProjectByID(userID, projectID string) (*models.Project, error) {
	if m.getProjectByIDFn != nil {
		return m.getProjectByIDFn(userID, projectID)
	}
	return &models.Project{}, nil
}

func (m *mockProjectService) UpdateProject(userID, projectID, name string, status *models.ProjectStatus, notes *string) (*models.Project, error) {
	if m.updateProjectFn != nil {
		return m.updateProjectFn(userID, projectID, name, status, notes)
	}
	return &models.Project{}, nil
}

func (m *mockProjectService) DeleteProject(userID, projectID string) error {
	if m.deleteProjectFn != nil {
		return m.deleteProjectFn(userID, projectID)
	}
	return nil
}

var _ services.ProjectServicer = (*mockProjectService)(nil)

func setupProjectRouter(handler *ProjectHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/projects", handler.CreateProject)
	auth.GET("/projects", handler.GetProjects)
	auth.GET("/projects/:id", handler.GetProject)
	auth.PUT("/projects/:id", handler.UpdateProject)
	auth.DELETE("/projects/:id", handler.DeleteProject)
	return r
}

func TestProjectHandler_CreateProject(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockProjectService{
			createProjectFn: func(userID, name, currency string, status models.ProjectStatus, notes string) (*models.Project, error) {
				return &models.Project{
					Base:     models.Base{ID: "proj-1"},
					UserID:   userID,
					Name:     name,
					Currency: "USD",
					Status:   models.ProjectStatusActive,
					Notes:    notes,
				}, nil
			},
		}
		handler := NewProjectHandler(svc)
		r := setupProjectRouter(handler)

		rec := doRequest(r, "POST", "/projects", `{"name":"Website Redesign","notes":"Q3 client work"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		project := result["project"].(map[string]interface{})
		if project["status"] != "active" {
			t.Errorf("expected active, got %v", project["status"])
		}
	})

	t.Run("returns 400 on bad status", func(t *testing.T) {
		handler := NewProjectHandler(&mockProjectService{})
		r := setupProjectRouter(handler)

		rec := doRequest(r, "POST", "/projects", `{"name":"X","status":"paused"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestProjectHandler_GetProjects(t *testing.T) {
	t.Run("passes status filter through", func(t *testing.T) {
		var captured *models.ProjectStatus
		svc := &mockProjectService{
			getUserProjectsFn: func(_ string, _ pagination.PageRequest, status *models.ProjectStatus) (*pagination.PageResponse[models.Project], error) {
				captured = status
				resp := pagination.NewPageResponse([]models.Project{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewProjectHandler(svc)
		r := setupProjectRouter(handler)

		rec := doRequest(r, "GET", "/projects?status=completed", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured == nil || *captured != models.ProjectStatusCompleted {
			t.Error("expected completed status filter")
		}
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		handler := NewProjectHandler(&mockProjectService{})
		r := setupProjectRouter(handler)

		rec := doRequest(r, "GET", "/projects?status=archived", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestProjectHandler_UpdateProject(t *testing.T) {
	t.Run("status change passes through", func(t *testing.T) {
		var captured *models.ProjectStatus
		svc := &mockProjectService{
			updateProjectFn: func(_, _, _ string, status *models.ProjectStatus, _ *string) (*models.Project, error) {
				captured = status
				return &models.Project{Status: *status}, nil
			},
		}
		handler := NewProjectHandler(svc)
		r := setupProjectRouter(handler)

		rec := doRequest(r, "PUT", "/projects/proj-1", `{"status":"on_hold"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured == nil || *captured != models.ProjectStatusOnHold {
			t.Error("expected on_hold status update")
		}
	})
}
