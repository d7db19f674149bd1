package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "monetra/internal/errors"
	"monetra/internal/models"
	"monetra/internal/pagination"
)

// categoryService handles expense-category business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new expense category. Names are unique per
// user, compared case-insensitively.
func (s *categoryService) CreateCategory(userID, name, currency string) (*models.ExpenseCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	var count int64
	s.db.Model(&models.ExpenseCategory{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.ExpenseCategory{
		UserID:   userID,
		Name:     name,
		Currency: currency,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// GetUserCategories returns a page of the user's categories ordered by name.
func (s *categoryService) GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.ExpenseCategory], error) {
	page.Defaults()

	var total int64
	if err := s.db.Model(&models.ExpenseCategory{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.ExpenseCategory
	if err := s.db.Where("user_id = ?", userID).
		Order("name ASC").
		Scopes(pagination.Paginate(page)).
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(categories, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetCategoryByID retrieves one of the user's categories.
func (s *categoryService) GetCategoryByID(userID, categoryID string) (*models.ExpenseCategory, error) {
	var category models.ExpenseCategory
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory renames a category or changes its currency. Empty
// arguments leave the field unchanged.
func (s *categoryService) UpdateCategory(userID, categoryID, name, currency string) (*models.ExpenseCategory, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" && !strings.EqualFold(name, category.Name) {
		var count int64
		s.db.Model(&models.ExpenseCategory{}).
			Where("user_id = ? AND LOWER(name) = LOWER(?) AND id != ?", userID, name, categoryID).
			Count(&count)
		if count > 0 {
			return nil, apperrors.ErrDuplicateCategory
		}
		category.Name = name
	} else if name != "" {
		category.Name = name
	}
	if currency != "" {
		category.Currency = currency
	}

	if err := s.db.Save(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// DeleteCategory removes a category and all transactions that reference
// it, atomically. Deleting the category without its transactions would
// leave orphans that every aggregation has to skip.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// The transactions are removed for good, not soft-deleted.
		if err := tx.Unscoped().
			Where("user_id = ? AND category_id = ?", userID, category.ID).
			Delete(&models.Transaction{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// CleanupOrphanTransactions permanently deletes the user's transactions
// whose category no longer exists and returns how many were removed.
// Intended for housekeeping calls; normal reads already exclude orphans.
func (s *categoryService) CleanupOrphanTransactions(userID string) (int64, error) {
	result := s.db.Unscoped().Where(
		"user_id = ? AND category_id IS NOT NULL AND category_id NOT IN (?)",
		userID,
		s.db.Model(&models.ExpenseCategory{}).Select("id").Where("user_id = ?", userID),
	).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	return result.RowsAffected, nil
}
