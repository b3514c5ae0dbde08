package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/garagehub/garage-api/internal/domain/transaction"
	"github.com/garagehub/garage-api/internal/httperr"
	"github.com/garagehub/garage-api/internal/httpresp"
	"github.com/garagehub/garage-api/internal/middleware"
	ucTransaction "github.com/garagehub/garage-api/internal/usecase/transaction"
)

type TransactionHandler struct {
	repo     domain.Repository
	createUC *ucTransaction.CreateTransaction
	updateUC *ucTransaction.UpdateTransaction
	removeUC *ucTransaction.RemoveTransaction
}

func NewTransactionHandler(
	repo domain.Repository,
	createUC *ucTransaction.CreateTransaction,
	updateUC *ucTransaction.UpdateTransaction,
	removeUC *ucTransaction.RemoveTransaction,
) *TransactionHandler {
	return &TransactionHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		removeUC: removeUC,
	}
}

// --------- Requests ---------

type CreateTransactionRequest struct {
	CustomerID   uint   `json:"customerId" binding:"required"`
	Status       string `json:"status"`
	ServiceIDs   []uint `json:"serviceIds"`
	SparepartIDs []uint `json:"sparepartIds"`
}

// Nil means "leave alone"; an explicit empty array clears the association.
type UpdateTransactionRequest struct {
	Status       *string `json:"status,omitempty"`
	ServiceIDs   *[]uint `json:"serviceIds,omitempty"`
	SparepartIDs *[]uint `json:"sparepartIds,omitempty"`
}

// --------- Handlers ---------

func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "An error occurred while retrieving transactions", err)
		return
	}

	httpresp.OK(c, "Transactions retrieved successfully", transactions)
}

func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	transaction, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Transaction not found")
			return
		}
		httperr.Internal(c, "An error occurred while retrieving the transaction", err)
		return
	}

	httpresp.OK(c, "Transaction retrieved successfully", transaction)
}

func (h *TransactionHandler) Create(c *gin.Context) {
	p := middleware.Principal(c)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Customer id is required", err)
		return
	}

	transaction, err := h.createUC.Execute(c.Request.Context(), ucTransaction.CreateTransactionInput{
		CustomerID:   req.CustomerID,
		TechnicianID: p.UserID,
		Status:       req.Status,
		ServiceIDs:   req.ServiceIDs,
		SparepartIDs: req.SparepartIDs,
	})
	if err != nil {
		httperr.WriteError(c, err, "An error occurred while creating the transaction")
		return
	}

	httpresp.Created(c, "Transaction created successfully", transaction)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	p := middleware.Principal(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid transaction payload", err)
		return
	}

	transaction, err := h.updateUC.Execute(c.Request.Context(), ucTransaction.UpdateTransactionInput{
		ID:           id,
		RequesterID:  p.UserID,
		Status:       req.Status,
		ServiceIDs:   req.ServiceIDs,
		SparepartIDs: req.SparepartIDs,
	})
	if err != nil {
		httperr.WriteError(c, err, "An error occurred while updating the transaction")
		return
	}

	httpresp.OK(c, "Transaction updated successfully", transaction)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	p := middleware.Principal(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), id, p.UserID); err != nil {
		httperr.WriteError(c, err, "An error occurred while deleting the transaction")
		return
	}

	httpresp.OK(c, "Transaction deleted successfully (soft deleted)", nil)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid id", err)
		return 0, false
	}
	return uint(id), true
}
