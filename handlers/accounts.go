package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SrChaoz/financeApp-sub000/database"
	"github.com/SrChaoz/financeApp-sub000/engine"
	"github.com/SrChaoz/financeApp-sub000/models"
)

// AccountRequest is the payload for creating or updating an account.
type AccountRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// AccountView is an account together with its derived balance.
type AccountView struct {
	models.Account
	Balance engine.BalanceView `json:"balance"`
}

// ListAccounts returns the user's accounts, each with its balance view.
func ListAccounts(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var accounts []models.Account
	if err := database.DB.Where("user_id = ?", userID).Order("created_at").Find(&accounts).Error; err != nil {
		return renderError(c, err)
	}

	var txs []models.Transaction
	if err := database.DB.Where("user_id = ?", userID).Find(&txs).Error; err != nil {
		return renderError(c, err)
	}
	byAccount := make(map[uuid.UUID][]models.Transaction, len(accounts))
	for _, tx := range txs {
		byAccount[tx.AccountID] = append(byAccount[tx.AccountID], tx)
	}

	views := make([]AccountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, AccountView{
			Account: a,
			Balance: engine.AccountBalance(byAccount[a.ID]),
		})
	}
	return c.JSON(views)
}

// CreateAccount creates an account for the user.
func CreateAccount(c *fiber.Ctx) error {
	var req AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.TrimSpace(req.Type)
	if req.Name == "" || req.Type == "" {
		return renderError(c, engine.InvalidInput("name and type are required"))
	}

	account := models.Account{
		ID:     uuid.New(),
		UserID: currentUserID(c),
		Name:   req.Name,
		Type:   req.Type,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(AccountView{Account: account, Balance: engine.AccountBalance(nil)})
}

// GetAccount returns one account with its balance view.
func GetAccount(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}

	var account models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&account).Error; err != nil {
		return renderError(c, err)
	}

	var txs []models.Transaction
	if err := database.DB.Where("account_id = ?", account.ID).Find(&txs).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(AccountView{Account: account, Balance: engine.AccountBalance(txs)})
}

// UpdateAccount renames or retypes an account.
func UpdateAccount(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}

	var req AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	var account models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", id, currentUserID(c)).First(&account).Error; err != nil {
		return renderError(c, err)
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		account.Name = name
	}
	if typ := strings.TrimSpace(req.Type); typ != "" {
		account.Type = typ
	}
	if err := database.DB.Save(&account).Error; err != nil {
		return renderError(c, err)
	}
	return c.JSON(account)
}

// DeleteAccount removes an account and all of its transactions in one
// database transaction, so no orphaned rows survive a partial failure.
func DeleteAccount(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return renderError(c, err)
	}
	userID := currentUserID(c)

	var account models.Account
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		return renderError(c, err)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", account.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&account).Error
	})
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Account deleted"})
}
