package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "monetra/internal/errors"
	"monetra/internal/models"
	"monetra/internal/pagination"
	"monetra/internal/services"
)

// TransactionHandler handles transaction requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
type CreateTransactionRequest struct {
	Type              string    `json:"type" binding:"required,transaction_type"`
	Amount            float64   `json:"amount" binding:"required,gt=0"`
	Currency          string    `json:"currency" binding:"omitempty,iso4217"`
	Date              time.Time `json:"date" binding:"required"`
	Notes             string    `json:"notes" binding:"max=2000"`
	CategoryID        *string   `json:"category_id" binding:"omitempty,uuid"`
	SourceID          *string   `json:"source_id" binding:"omitempty,uuid"`
	ProjectID         *string   `json:"project_id" binding:"omitempty,uuid"`
	TransferDirection *string   `json:"transfer_direction" binding:"omitempty,transfer_direction"`
}

// UpdateTransactionRequest represents the request payload for updating a
// transaction. The type cannot be changed.
type UpdateTransactionRequest struct {
	Amount     *float64   `json:"amount" binding:"omitempty,gt=0"`
	Currency   *string    `json:"currency" binding:"omitempty,iso4217"`
	Date       *time.Time `json:"date"`
	Notes      *string    `json:"notes" binding:"omitempty,max=2000"`
	CategoryID *string    `json:"category_id" binding:"omitempty,uuid"`
	SourceID   *string    `json:"source_id" binding:"omitempty,uuid"`
	ProjectID  *string    `json:"project_id" binding:"omitempty,uuid"`
}

// ListTransactionsQuery holds the supported query filters.
type ListTransactionsQuery struct {
	pagination.PageRequest
	Year       int     `form:"year" binding:"omitempty,min=1970,max=2200"`
	Month      int     `form:"month" binding:"omitempty,min=1,max=12"`
	Type       *string `form:"type" binding:"omitempty,transaction_type"`
	CategoryID *string `form:"category_id" binding:"omitempty,uuid"`
	SourceID   *string `form:"source_id" binding:"omitempty,uuid"`
	ProjectID  *string `form:"project_id" binding:"omitempty,uuid"`
	Currency   *string `form:"currency" binding:"omitempty,iso4217"`
}

// CreateTransaction handles the creation of a new transaction.
// @Summary     Create a transaction
// @Description Record an income, expense, or savings transfer
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Referenced entity not found"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.TransactionInput{
		Type:       models.TransactionType(req.Type),
		Amount:     req.Amount,
		Currency:   req.Currency,
		Date:       req.Date,
		Notes:      req.Notes,
		CategoryID: req.CategoryID,
		SourceID:   req.SourceID,
		ProjectID:  req.ProjectID,
	}
	if req.TransferDirection != nil {
		d := models.TransferDirection(*req.TransferDirection)
		input.TransferDirection = &d
	}

	tx, err := h.transactionService.CreateTransaction(userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// GetTransactions handles listing transactions with filters.
// @Summary     Get transactions
// @Description Get a paginated, filterable list of transactions, newest first
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       year        query int    false "Filter by year"
// @Param       month       query int    false "Filter by month (requires year)"
// @Param       type        query string false "Filter by type"
// @Param       category_id query string false "Filter by category"
// @Param       source_id   query string false "Filter by source"
// @Param       project_id  query string false "Filter by project"
// @Param       currency    query string false "Filter by currency"
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if query.Month != 0 && query.Year == 0 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "month filter requires year"))
		return
	}

	filter := services.TransactionFilter{
		Year:       query.Year,
		Month:      time.Month(query.Month),
		CategoryID: query.CategoryID,
		SourceID:   query.SourceID,
		ProjectID:  query.ProjectID,
		Currency:   query.Currency,
	}
	if query.Type != nil {
		t := models.TransactionType(*query.Type)
		filter.Type = &t
	}

	result, err := h.transactionService.GetUserTransactions(userID, query.PageRequest, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransaction handles retrieving a single transaction.
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransactionByID(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// UpdateTransaction handles updating a transaction.
// @Summary     Update a transaction
// @Description Update a transaction's editable fields; the type is immutable
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.transactionService.UpdateTransaction(userID, id, services.TransactionUpdate{
		Amount:     req.Amount,
		Currency:   req.Currency,
		Date:       req.Date,
		Notes:      req.Notes,
		CategoryID: req.CategoryID,
		SourceID:   req.SourceID,
		ProjectID:  req.ProjectID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// DeleteTransaction handles deleting a transaction.
// @Summary     Delete a transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]string "Deletion confirmation"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
