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

// ReminderRequest is the payload for creating a reminder.
type ReminderRequest struct {
	Title     string                   `json:"title"`
	Amount    *decimal.Decimal         `json:"amount"`
	DueDate   time.Time                `json:"due_date"`
	Frequency models.ReminderFrequency `json:"frequency"`
	Category  string                   `json:"category"`
	Notes     string                   `json:"notes"`
}

// ReminderUpdateRequest carries optional field edits.
type ReminderUpdateRequest struct {
	Title     *string                   `json:"title"`
	Amount    *decimal.Decimal          `json:"amount"`
	DueDate   *time.Time                `json:"due_date"`
	Frequency *models.ReminderFrequency `json:"frequency"`
	Category  *string                   `json:"category"`
	Notes     *string                   `json:"notes"`
	IsActive  *bool                     `json:"is_active"`
}

// ReminderView is a reminder with its display bucket relative to today.
type ReminderView struct {
	models.Reminder
	Bucket engine.DueBucket `json:"bucket"`
}

func validFrequency(f models.ReminderFrequency) bool {
	switch f {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly:
		return true
	}
	return false
}

// ListReminders returns all of the user's reminders with due buckets.
func ListReminders(c *fiber.Ctx) error {
	var reminders []models.Reminder
	if err := database.DB.Where("user_id = ?", currentUserID(c)).Order("due_date").Find(&reminders).Error; err != nil {
		return renderError(c, err)
	}

	now := time.Now()
	out := make([]ReminderView, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, ReminderView{Reminder: r, Bucket: engine.Bucket(r.DueDate, now)})
	}
	return c.JSON(out)
}

// UpcomingReminders returns the active reminders due within the next seven
// days, soonest first.
func UpcomingReminders(c *fiber.Ctx) error {
	var reminders []models.Reminder
	if err := database.DB.Where("user_id = ? AND is_active = ?", currentUserID(c), true).Find(&reminders).Error; err != nil {
		return renderError(c, err)
	}

	now := time.Now()
	upcoming := engine.UpcomingReminders(reminders, now)
	out := make([]ReminderView, 0, len(upcoming))
	for _, r := range upcoming {
		out = append(out, ReminderView{Reminder: r, Bucket: engine.Bucket(r.DueDate, now)})
	}
	return c.JSON(out)
}

// CreateReminder creates a payment reminder.
func CreateReminder(c *fiber.Ctx) error {
	var req ReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return renderError(c, engine.InvalidInput("title is required"))
	}
	if req.DueDate.IsZero() {
		return renderError(c, engine.InvalidInput("due_date is required"))
	}
	if !validFrequency(req.Frequency) {
		return renderError(c, engine.InvalidInput("frequency must be DAILY, WEEKLY, MONTHLY or YEARLY"))
	}
	if req.Amount != nil && !req.Amount.IsPositive() {
		return renderError(c, engine.InvalidInput("amount must be positive"))
	}

	reminder := models.Reminder{
		ID:        uuid.New(),
		UserID:    currentUserID(c),
		Title:     req.Title,
		Amount:    req.Amount,
		DueDate:   req.DueDate,
		Frequency: req.Frequency,
		Category:  req.Category,
		Notes:     req.Notes,
		IsActive:  true,
	}
	if err := database.DB.Create(&reminder).Error; err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reminder)
}

// UpdateReminder edits a reminder, including toggling it active.
func UpdateReminder(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}

	var req ReminderUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var reminder models.Reminder
	if err := database.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&reminder).Error; err != nil {
		return renderError(c, err)
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return renderError(c, engine.InvalidInput("title is required"))
		}
		reminder.Title = *req.Title
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return renderError(c, engine.InvalidInput("amount must be positive"))
		}
		reminder.Amount = req.Amount
	}
	if req.DueDate != nil {
		reminder.DueDate = *req.DueDate
	}
	if req.Frequency != nil {
		if !validFrequency(*req.Frequency) {
			return renderError(c, engine.InvalidInput("frequency must be DAILY, WEEKLY, MONTHLY or YEARLY"))
		}
		reminder.Frequency = *req.Frequency
	}
	if req.Category != nil {
		reminder.Category = *req.Category
	}
	if req.Notes != nil {
		reminder.Notes = *req.Notes
	}
	if req.IsActive != nil {
		reminder.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&reminder).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(reminder)
}

// DeleteReminder removes a reminder.
func DeleteReminder(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}

	var reminder models.Reminder
	if err := database.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&reminder).Error; err != nil {
		return renderError(c, err)
	}
	if err := database.DB.Delete(&reminder).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Reminder deleted"})
}
