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

// GoalRequest is the payload for creating a goal.
type GoalRequest struct {
	Name          string           `json:"name"`
	TargetAmount  *decimal.Decimal `json:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
	Deadline      *time.Time       `json:"deadline"`
	Description   string           `json:"description"`
}

// GoalUpdateRequest carries optional field edits. Completion state is not
// editable here: the ACTIVE -> COMPLETED transition is one-way and owned by
// the engine, so is_completed/completed_at in a payload are ignored.
type GoalUpdateRequest struct {
	Name          *string          `json:"name"`
	TargetAmount  *decimal.Decimal `json:"target_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount"`
	Deadline      *time.Time       `json:"deadline"`
	Description   *string          `json:"description"`
}

// DepositRequest is the payload for adding money to a goal.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// GoalResponse is a goal together with its progress view.
type GoalResponse struct {
	models.Goal
	Progress engine.GoalView `json:"progress"`
}

func goalResponse(g models.Goal) GoalResponse {
	return GoalResponse{Goal: g, Progress: engine.Progress(g)}
}

// ListGoals returns the user's goals with progress views.
func ListGoals(c *fiber.Ctx) error {
	var goals []models.Goal
	if err := database.DB.Where("user_id = ?", currentUserID(c)).Order("created_at").Find(&goals).Error; err != nil {
		return renderError(c, err)
	}
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, goalResponse(g))
	}
	return c.JSON(out)
}

// CreateGoal creates a savings goal.
func CreateGoal(c *fiber.Ctx) error {
	var req GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return renderError(c, engine.InvalidInput("name is required"))
	}
	if req.TargetAmount == nil || !req.TargetAmount.IsPositive() {
		return renderError(c, engine.InvalidInput("target_amount must be positive"))
	}
	current := decimal.Zero
	if req.CurrentAmount != nil {
		if req.CurrentAmount.IsNegative() {
			return renderError(c, engine.InvalidInput("current_amount must not be negative"))
		}
		current = *req.CurrentAmount
	}

	goal := models.Goal{
		ID:            uuid.New(),
		UserID:        currentUserID(c),
		Name:          req.Name,
		TargetAmount:  *req.TargetAmount,
		CurrentAmount: current,
		Deadline:      req.Deadline,
		Description:   req.Description,
	}
	if err := database.DB.Create(&goal).Error; err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(goalResponse(goal))
}

// GetGoal returns one goal with its progress view.
func GetGoal(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}
	var goal models.Goal
	if err := database.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&goal).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(goalResponse(goal))
}

// UpdateGoal edits a goal's fields. When the edit leaves the current amount
// at or past the target, the goal auto-completes.
func UpdateGoal(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}

	var req GoalUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var goal models.Goal
	if err := database.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&goal).Error; err != nil {
		return renderError(c, err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return renderError(c, engine.InvalidInput("name is required"))
		}
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if !req.TargetAmount.IsPositive() {
			return renderError(c, engine.InvalidInput("target_amount must be positive"))
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		if req.CurrentAmount.IsNegative() {
			return renderError(c, engine.InvalidInput("current_amount must not be negative"))
		}
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Deadline != nil {
		goal.Deadline = req.Deadline
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}

	engine.ReconcileCompletion(&goal, time.Now())

	if err := database.DB.Save(&goal).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(goalResponse(goal))
}

// AddToGoal deposits money into a goal, auto-completing it when the target
// is reached.
func AddToGoal(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}

	var req DepositRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var goal models.Goal
	if err := database.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&goal).Error; err != nil {
		return renderError(c, err)
	}

	if err := engine.Deposit(&goal, req.Amount, time.Now()); err != nil {
		return renderError(c, err)
	}
	if err := database.DB.Save(&goal).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(goalResponse(goal))
}

// CompleteGoal explicitly marks a goal completed. Completing twice is a
// conflict and leaves the original completion timestamp in place.
func CompleteGoal(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}

	var goal models.Goal
	if err := database.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&goal).Error; err != nil {
		return renderError(c, err)
	}

	if err := engine.Complete(&goal, time.Now()); err != nil {
		return renderError(c, err)
	}
	if err := database.DB.Save(&goal).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(goalResponse(goal))
}

// DeleteGoal removes a goal.
func DeleteGoal(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}

	var goal models.Goal
	if err := database.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&goal).Error; err != nil {
		return renderError(c, err)
	}
	if err := database.DB.Delete(&goal).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Goal deleted"})
}
