package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SrChaoz/financeApp-sub000/database"
	"github.com/SrChaoz/financeApp-sub000/engine"
	"github.com/SrChaoz/financeApp-sub000/models"
)

// TransactionRequest is the payload for creating a transaction.
type TransactionRequest struct {
	AccountID   uuid.UUID              `json:"account_id"`
	Amount      decimal.Decimal        `json:"amount"`
	Type        models.TransactionType `json:"type"`
	Date        time.Time              `json:"date"`
	Category    string                 `json:"category"`
	Notes       string                 `json:"notes"`
	IsRecurring bool                   `json:"is_recurring"`
}

// TransactionUpdateRequest carries optional field edits; identity and
// ownership never change.
type TransactionUpdateRequest struct {
	Amount      *decimal.Decimal        `json:"amount"`
	Type        *models.TransactionType `json:"type"`
	Date        *time.Time              `json:"date"`
	Category    *string                 `json:"category"`
	Notes       *string                 `json:"notes"`
	IsRecurring *bool                   `json:"is_recurring"`
}

func validTransactionType(t models.TransactionType) bool {
	return t == models.TypeIncome || t == models.TypeExpense
}

// ListTransactions returns the user's transactions, optionally filtered by
// account, type, category and inclusive date range.
func ListTransactions(c *fiber.Ctx) error {
	q := database.DB.Where("user_id = ?", currentUserID(c))

	if v := c.Query("account_id"); v != "" {
		accountID, err := uuid.Parse(v)
		if err != nil {
			return renderError(c, engine.InvalidInput("invalid account_id"))
		}
		q = q.Where("account_id = ?", accountID)
	}
	if v := c.Query("type"); v != "" {
		if !validTransactionType(models.TransactionType(v)) {
			return renderError(c, engine.InvalidInput("type must be INCOME or EXPENSE"))
		}
		q = q.Where("type = ?", v)
	}
	if v := c.Query("category"); v != "" {
		q = q.Where("category = ?", v)
	}
	start, err := parseDateBound(c.Query("start_date"), false)
	if err != nil {
		return renderError(c, err)
	}
	end, err := parseDateBound(c.Query("end_date"), true)
	if err != nil {
		return renderError(c, err)
	}
	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date <= ?", *end)
	}

	var txs []models.Transaction
	if err := q.Order("date DESC").Find(&txs).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(txs)
}

// CreateTransaction logs an income or expense movement. The target account
// must belong to the caller; a foreign account reads as not found.
func CreateTransaction(c *fiber.Ctx) error {
	var req TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validateTransaction(req); err != nil {
		return renderError(c, err)
	}
	userID := currentUserID(c)

	var account models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", req.AccountID, userID).First(&account).Error; err != nil {
		return renderError(c, engine.NotFound("account not found"))
	}

	tx := models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   account.ID,
		Amount:      req.Amount,
		Type:        req.Type,
		Date:        req.Date,
		Category:    req.Category,
		Notes:       req.Notes,
		IsRecurring: req.IsRecurring,
	}
	if err := database.DB.Create(&tx).Error; err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// UpdateTransaction edits the mutable fields of a transaction.
func UpdateTransaction(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}

	var req TransactionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var tx models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&tx).Error; err != nil {
		return renderError(c, err)
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return renderError(c, engine.InvalidInput("amount must be positive"))
		}
		tx.Amount = *req.Amount
	}
	if req.Type != nil {
		if !validTransactionType(*req.Type) {
			return renderError(c, engine.InvalidInput("type must be INCOME or EXPENSE"))
		}
		tx.Type = *req.Type
	}
	if req.Date != nil {
		tx.Date = *req.Date
	}
	if req.Category != nil {
		if strings.TrimSpace(*req.Category) == "" {
			return renderError(c, engine.InvalidInput("category is required"))
		}
		tx.Category = *req.Category
	}
	if req.Notes != nil {
		tx.Notes = *req.Notes
	}
	if req.IsRecurring != nil {
		tx.IsRecurring = *req.IsRecurring
	}

	if err := database.DB.Save(&tx).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(tx)
}

// DeleteTransaction removes a transaction.
func DeleteTransaction(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}

	var tx models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&tx).Error; err != nil {
		return renderError(c, err)
	}
	if err := database.DB.Delete(&tx).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transaction deleted"})
}

func validateTransaction(req TransactionRequest) error {
	if req.AccountID == uuid.Nil {
		return engine.InvalidInput("account_id is required")
	}
	if !req.Amount.IsPositive() {
		return engine.InvalidInput("amount must be positive")
	}
	if !validTransactionType(req.Type) {
		return engine.InvalidInput("type must be INCOME or EXPENSE")
	}
	if req.Date.IsZero() {
		return engine.InvalidInput("date is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return engine.InvalidInput("category is required")
	}
	return nil
}
