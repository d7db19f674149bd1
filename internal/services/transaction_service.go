package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "monetra/internal/errors"
	"monetra/internal/models"
	"monetra/internal/pagination"
)

// transactionService handles transaction business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction records a new transaction after validating its
// per-type references. Expenses may carry a category; income may carry a
// source and a project; savings transfers must carry a direction and
// nothing else.
func (s *transactionService) CreateTransaction(userID string, in TransactionInput) (*models.Transaction, error) {
	if in.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if in.Currency == "" {
		in.Currency = "USD"
	}

	if err := s.validateReferences(userID, in.Type, in.CategoryID, in.SourceID, in.ProjectID, in.TransferDirection); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:            userID,
		Type:              in.Type,
		Amount:            in.Amount,
		Currency:          in.Currency,
		Date:              in.Date,
		Notes:             in.Notes,
		CategoryID:        in.CategoryID,
		SourceID:          in.SourceID,
		ProjectID:         in.ProjectID,
		TransferDirection: in.TransferDirection,
	}
	if err := s.db.Create(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tx, nil
}

// validateReferences enforces the per-type reference rules and checks
// that referenced entities exist and belong to the user.
func (s *transactionService) validateReferences(userID string, txType models.TransactionType,
	categoryID, sourceID, projectID *string, direction *models.TransferDirection) error {

	switch txType {
	case models.TransactionTypeExpense:
		if sourceID != nil || projectID != nil || direction != nil {
			return apperrors.ErrInvalidReference
		}
		if categoryID != nil {
			var count int64
			s.db.Model(&models.ExpenseCategory{}).
				Where("id = ? AND user_id = ?", *categoryID, userID).Count(&count)
			if count == 0 {
				return apperrors.ErrCategoryNotFound
			}
		}
	case models.TransactionTypeIncome:
		if categoryID != nil || direction != nil {
			return apperrors.ErrInvalidReference
		}
		if sourceID != nil {
			var count int64
			s.db.Model(&models.IncomeSource{}).
				Where("id = ? AND user_id = ?", *sourceID, userID).Count(&count)
			if count == 0 {
				return apperrors.ErrSourceNotFound
			}
		}
		if projectID != nil {
			var count int64
			s.db.Model(&models.Project{}).
				Where("id = ? AND user_id = ?", *projectID, userID).Count(&count)
			if count == 0 {
				return apperrors.ErrProjectNotFound
			}
		}
	case models.TransactionTypeSavingsTransfer:
		if categoryID != nil || sourceID != nil || projectID != nil {
			return apperrors.ErrInvalidReference
		}
		if direction == nil {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "transfer_direction is required for savings transfers")
		}
	default:
		return apperrors.ErrInvalidTransactionType
	}
	return nil
}

// GetUserTransactions returns a page of the user's transactions, newest
// first, with the optional filters applied.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	query := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if filter.Year != 0 {
		start := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)
		if filter.Month != 0 {
			start = time.Date(filter.Year, filter.Month, 1, 0, 0, 0, 0, time.UTC)
			end = start.AddDate(0, 1, 0)
		}
		query = query.Where("date >= ? AND date < ?", start, end)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SourceID != nil {
		query = query.Where("source_id = ?", *filter.SourceID)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Currency != nil {
		query = query.Where("currency = ?", *filter.Currency)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := query.
		Preload("Category").
		Preload("Source").
		Preload("Project").
		Order("date DESC, created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(transactions, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetTransactionByID retrieves one of the user's transactions.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.
		Preload("Category").
		Preload("Source").
		Preload("Project").
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tx, nil
}

// UpdateTransaction modifies a transaction's editable fields. The type
// is immutable; new references are validated against it.
func (s *transactionService) UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error) {
	tx, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
		}
		tx.Amount = *update.Amount
	}
	if update.Currency != nil {
		tx.Currency = *update.Currency
	}
	if update.Date != nil {
		tx.Date = *update.Date
	}
	if update.Notes != nil {
		tx.Notes = *update.Notes
	}

	categoryID := tx.CategoryID
	sourceID := tx.SourceID
	projectID := tx.ProjectID
	if update.CategoryID != nil {
		categoryID = update.CategoryID
	}
	if update.SourceID != nil {
		sourceID = update.SourceID
	}
	if update.ProjectID != nil {
		projectID = update.ProjectID
	}
	if err := s.validateReferences(userID, tx.Type, categoryID, sourceID, projectID, tx.TransferDirection); err != nil {
		return nil, err
	}
	tx.CategoryID = categoryID
	tx.SourceID = sourceID
	tx.ProjectID = projectID

	if err := s.db.Save(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tx, nil
}

// DeleteTransaction removes a transaction.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	tx, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(tx).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
