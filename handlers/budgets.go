package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SrChaoz/financeApp-sub000/database"
	"github.com/SrChaoz/financeApp-sub000/engine"
	"github.com/SrChaoz/financeApp-sub000/models"
)

// BudgetRequest is the payload for creating or updating a budget.
type BudgetRequest struct {
	Category    string           `json:"category"`
	LimitAmount *decimal.Decimal `json:"limit_amount"`
}

// BudgetResponse is a budget together with its utilization view.
type BudgetResponse struct {
	models.Budget
	Utilization engine.BudgetView `json:"utilization"`
}

// ListBudgets returns the user's budgets, each with spent/percentage/
// remaining computed over the user's expense transactions.
func ListBudgets(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var budgets []models.Budget
	if err := database.DB.Where("user_id = ?", userID).Order("created_at").Find(&budgets).Error; err != nil {
		return renderError(c, err)
	}

	var expenses []models.Transaction
	if err := database.DB.Where("user_id = ? AND type = ?", userID, models.TypeExpense).Find(&expenses).Error; err != nil {
		return renderError(c, err)
	}

	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, BudgetResponse{Budget: b, Utilization: engine.Utilization(b, expenses)})
	}
	return c.JSON(out)
}

// CreateBudget defines a spending limit for a category.
func CreateBudget(c *fiber.Ctx) error {
	var req BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		return renderError(c, engine.InvalidInput("category is required"))
	}
	if req.LimitAmount == nil || !req.LimitAmount.IsPositive() {
		return renderError(c, engine.InvalidInput("limit_amount must be positive"))
	}

	budget := models.Budget{
		ID:          uuid.New(),
		UserID:      currentUserID(c),
		Category:    req.Category,
		LimitAmount: *req.LimitAmount,
	}
	if err := database.DB.Create(&budget).Error; err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(budget)
}

// GetBudget returns one budget with its utilization view.
func GetBudget(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}
	userID := currentUserID(c)

	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error; err != nil {
		return renderError(c, err)
	}

	var expenses []models.Transaction
	if err := database.DB.Where("user_id = ? AND type = ?", userID, models.TypeExpense).Find(&expenses).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(BudgetResponse{Budget: budget, Utilization: engine.Utilization(budget, expenses)})
}

// UpdateBudget edits a budget's category or limit.
func UpdateBudget(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}

	var req BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&budget).Error; err != nil {
		return renderError(c, err)
	}

	if category := strings.TrimSpace(req.Category); category != "" {
		budget.Category = category
	}
	if req.LimitAmount != nil {
		if !req.LimitAmount.IsPositive() {
			return renderError(c, engine.InvalidInput("limit_amount must be positive"))
		}
		budget.LimitAmount = *req.LimitAmount
	}
	if err := database.DB.Save(&budget).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(budget)
}

// DeleteBudget removes a budget.
func DeleteBudget(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}

	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&budget).Error; err != nil {
		return renderError(c, err)
	}
	if err := database.DB.Delete(&budget).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Budget deleted"})
}
