package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "monetra/internal/errors"
	"monetra/internal/models"
	"monetra/internal/pagination"
)

// projectService handles project business logic.
type projectService struct {
	db *gorm.DB
}

// NewProjectService creates a new ProjectServicer.
func NewProjectService(db *gorm.DB) ProjectServicer {
	return &projectService{db: db}
}

// CreateProject creates a new project for a user. Status defaults to
// active when empty.
func (s *projectService) CreateProject(userID, name, currency string, status models.ProjectStatus, notes string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "project name is required")
	}
	if status == "" {
		status = models.ProjectStatusActive
	}
	if currency == "" {
		currency = "USD"
	}

	project := &models.Project{
		UserID:   userID,
		Name:     name,
		Currency: currency,
		Status:   status,
		Notes:    notes,
	}
	if err := s.db.Create(project).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return project, nil
}

// GetUserProjects returns a page of the user's projects ordered by name,
// optionally filtered by status.
func (s *projectService) GetUserProjects(userID string, page pagination.PageRequest, status *models.ProjectStatus) (*pagination.PageResponse[models.Project], error) {
	page.Defaults()

	query := s.db.Model(&models.Project{}).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var projects []models.Project
	if err := query.
		Order("name ASC").
		Scopes(pagination.Paginate(page)).
		Find(&projects).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(projects, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetProjectByID retrieves one of the user's projects.
func (s *projectService) GetProjectByID(userID, projectID string) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &project, nil
}

// UpdateProject modifies a project. Nil or empty arguments leave the
// corresponding field unchanged.
func (s *projectService) UpdateProject(userID, projectID, name string, status *models.ProjectStatus, notes *string) (*models.Project, error) {
	project, err := s.GetProjectByID(userID, projectID)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		project.Name = name
	}
	if status != nil {
		project.Status = *status
	}
	if notes != nil {
		project.Notes = *notes
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return project, nil
}

// DeleteProject removes a project and detaches its income transactions.
func (s *projectService) DeleteProject(userID, projectID string) error {
	project, err := s.GetProjectByID(userID, projectID)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaction{}).
			Where("user_id = ? AND project_id = ?", userID, projectID).
			Update("project_id", nil).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(project).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
