package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/genai"

	"github.com/SrChaoz/financeApp-sub000/database"
	"github.com/SrChaoz/financeApp-sub000/engine"
	"github.com/SrChaoz/financeApp-sub000/models"
)

// Insight is one piece of spending commentary from the model.
type Insight struct {
	Category    string `json:"category"`
	Observation string `json:"observation"`
	Suggestion  string `json:"suggestion"`
}

// SpendingInsights asks Gemini for commentary on the user's per-category
// expense totals.
func SpendingInsights(c *fiber.Ctx) error {
	if geminiAPIKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "GEMINI_API_KEY not set"})
	}
	userID := currentUserID(c)

	var txs []models.Transaction
	if err := database.DB.Where("user_id = ? AND type = ?", userID, models.TypeExpense).Find(&txs).Error; err != nil {
		return renderError(c, err)
	}

	stats := engine.Summarize(txs)
	if len(stats.ExpensesByCategory) == 0 {
		return c.JSON(fiber.Map{
			"message":  "No expenses to analyze",
			"insights": []Insight{},
		})
	}

	// Stable category order keeps the prompt deterministic.
	categories := make([]string, 0, len(stats.ExpensesByCategory))
	for cat := range stats.ExpensesByCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var promptBuilder strings.Builder
	promptBuilder.WriteString("You are a personal finance advisor. Analyze these monthly expense totals per category.\n")
	promptBuilder.WriteString("Return a RAW JSON ARRAY of objects. Do NOT use markdown formatting.\n")
	promptBuilder.WriteString("Each object must have: 'category', 'observation' (one sentence), and 'suggestion' (one actionable tip).\n\n")
	for _, cat := range categories {
		promptBuilder.WriteString(fmt.Sprintf(`{"category": "%s", "total": %s}`+"\n", cat, stats.ExpensesByCategory[cat].StringFixed(2)))
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: geminiAPIKey})
	if err != nil {
		slog.Error("failed to init AI client", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to init AI client"})
	}

	resp, err := client.Models.GenerateContent(ctx, "gemini-1.5-flash", genai.Text(promptBuilder.String()), nil)
	if err != nil {
		slog.Error("AI generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "AI generation failed"})
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Empty response from AI"})
	}

	rawText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			rawText += part.Text
		}
	}

	// Strip markdown fences if the model added them anyway.
	rawText = strings.TrimSpace(rawText)
	rawText = strings.TrimPrefix(rawText, "```json")
	rawText = strings.TrimPrefix(rawText, "```")
	rawText = strings.TrimSuffix(rawText, "```")

	var insights []Insight
	if err := json.Unmarshal([]byte(rawText), &insights); err != nil {
		slog.Error("failed to parse AI response", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse AI response"})
	}

	return c.JSON(fiber.Map{
		"count":    len(insights),
		"insights": insights,
	})
}
