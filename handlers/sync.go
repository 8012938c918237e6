package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SrChaoz/financeApp-sub000/database"
	"github.com/SrChaoz/financeApp-sub000/models"
)

// PendingTransaction is one outbox entry recorded by an offline client.
type PendingTransaction struct {
	ClientID    string                 `json:"client_id"`
	AccountID   uuid.UUID              `json:"account_id"`
	Amount      decimal.Decimal        `json:"amount"`
	Type        models.TransactionType `json:"type"`
	Date        time.Time              `json:"date"`
	Category    string                 `json:"category"`
	Notes       string                 `json:"notes"`
	IsRecurring bool                   `json:"is_recurring"`
}

// SyncResponse reports how the batch was absorbed.
type SyncResponse struct {
	Synced     int `json:"synced"`
	Duplicates int `json:"duplicates"`
	Rejected   int `json:"rejected"`
}

// BatchSync drains a client outbox: entries already seen (same client_id
// for this user) count as duplicates, entries that fail validation or
// reference an account the user does not own are rejected, the rest are
// inserted in one batch. Replaying the same batch is safe.
func BatchSync(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var pending []PendingTransaction
	if err := c.BodyParser(&pending); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(pending) == 0 {
		return c.JSON(SyncResponse{})
	}

	// Dedup against client ids this user already synced.
	clientIDs := make([]string, 0, len(pending))
	for _, p := range pending {
		if p.ClientID != "" {
			clientIDs = append(clientIDs, p.ClientID)
		}
	}
	var existingIDs []string
	if len(clientIDs) > 0 {
		database.DB.Model(&models.Transaction{}).
			Where("user_id = ? AND client_id IN ?", userID, clientIDs).
			Pluck("client_id", &existingIDs)
	}
	existing := make(map[string]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	// Only accounts the user owns may receive synced rows.
	var accounts []models.Account
	database.DB.Where("user_id = ?", userID).Find(&accounts)
	owned := make(map[uuid.UUID]bool, len(accounts))
	for _, a := range accounts {
		owned[a.ID] = true
	}

	var batch []models.Transaction
	resp := SyncResponse{}
	seen := make(map[string]bool, len(pending))

	for _, p := range pending {
		if p.ClientID == "" {
			resp.Rejected++
			continue
		}
		if existing[p.ClientID] || seen[p.ClientID] {
			resp.Duplicates++
			continue
		}
		if !owned[p.AccountID] || !p.Amount.IsPositive() || !validTransactionType(p.Type) ||
			p.Date.IsZero() || p.Category == "" {
			resp.Rejected++
			continue
		}
		seen[p.ClientID] = true

		batch = append(batch, models.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			AccountID:   p.AccountID,
			Amount:      p.Amount,
			Type:        p.Type,
			Date:        p.Date,
			Category:    p.Category,
			Notes:       p.Notes,
			IsRecurring: p.IsRecurring,
			ClientID:    p.ClientID,
		})
	}

	if len(batch) > 0 {
		if err := database.DB.CreateInBatches(batch, 100).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sync transactions"})
		}
	}
	resp.Synced = len(batch)

	return c.JSON(resp)
}
