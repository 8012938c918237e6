package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SrChaoz/financeApp-sub000/database"
	"github.com/SrChaoz/financeApp-sub000/engine"
	"github.com/SrChaoz/financeApp-sub000/models"
)

// GetStats returns the global statistics view, optionally restricted to an
// inclusive [start_date, end_date] range.
func GetStats(c *fiber.Ctx) error {
	start, err := parseDateBound(c.Query("start_date"), false)
	if err != nil {
		return renderError(c, err)
	}
	end, err := parseDateBound(c.Query("end_date"), true)
	if err != nil {
		return renderError(c, err)
	}

	var txs []models.Transaction
	if err := database.DB.Where("user_id = ?", currentUserID(c)).Find(&txs).Error; err != nil {
		return renderError(c, err)
	}

	return c.JSON(engine.Summarize(engine.InRange(txs, start, end)))
}
