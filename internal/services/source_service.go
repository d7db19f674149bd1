package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "monetra/internal/errors"
	"monetra/internal/models"
	"monetra/internal/pagination"
)

// sourceService handles income-source business logic.
type sourceService struct {
	db *gorm.DB
}

// NewSourceService creates a new SourceServicer.
func NewSourceService(db *gorm.DB) SourceServicer {
	return &sourceService{db: db}
}

// CreateSource creates a new income source for a user.
func (s *sourceService) CreateSource(userID, name string) (*models.IncomeSource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source name is required")
	}

	source := &models.IncomeSource{
		UserID: userID,
		Name:   name,
	}
	if err := s.db.Create(source).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return source, nil
}

// GetUserSources returns a page of the user's income sources ordered by name.
func (s *sourceService) GetUserSources(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.IncomeSource], error) {
	page.Defaults()

	var total int64
	if err := s.db.Model(&models.IncomeSource{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var sources []models.IncomeSource
	if err := s.db.Where("user_id = ?", userID).
		Order("name ASC").
		Scopes(pagination.Paginate(page)).
		Find(&sources).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(sources, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetSourceByID retrieves one of the user's income sources.
func (s *sourceService) GetSourceByID(userID, sourceID string) (*models.IncomeSource, error) {
	var source models.IncomeSource
	if err := s.db.Where("id = ? AND user_id = ?", sourceID, userID).First(&source).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSourceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &source, nil
}

// UpdateSource renames an income source.
func (s *sourceService) UpdateSource(userID, sourceID, name string) (*models.IncomeSource, error) {
	source, err := s.GetSourceByID(userID, sourceID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source name is required")
	}
	source.Name = name

	if err := s.db.Save(source).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return source, nil
}

// DeleteSource removes an income source and detaches its transactions.
// The transactions themselves survive as unattributed income.
func (s *sourceService) DeleteSource(userID, sourceID string) error {
	source, err := s.GetSourceByID(userID, sourceID)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaction{}).
			Where("user_id = ? AND source_id = ?", userID, sourceID).
			Update("source_id", nil).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(source).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
