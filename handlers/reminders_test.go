package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *HandlersSuite) createReminder(title string, due time.Time) string {
	var out struct {
		ID string `json:"id"`
	}
	resp := s.request(http.MethodPost, "/api/v1/reminders", s.token, fiber.Map{
		"title":     title,
		"due_date":  due.Format(time.RFC3339),
		"frequency": "MONTHLY",
		"category":  "Servicios",
	}, &out)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	return out.ID
}

func (s *HandlersSuite) TestReminderValidation() {
	tests := []struct {
		name string
		body fiber.Map
	}{
		{"missing title", fiber.Map{
			"due_date": "2025-06-01T00:00:00Z", "frequency": "MONTHLY",
		}},
		{"missing due date", fiber.Map{
			"title": "Luz", "frequency": "MONTHLY",
		}},
		{"bad frequency", fiber.Map{
			"title": "Luz", "due_date": "2025-06-01T00:00:00Z", "frequency": "HOURLY",
		}},
		{"non-positive amount", fiber.Map{
			"title": "Luz", "due_date": "2025-06-01T00:00:00Z",
			"frequency": "MONTHLY", "amount": "0",
		}},
	}

	for _, tc := range tests {
		resp := s.request(http.MethodPost, "/api/v1/reminders", s.token, tc.body, nil)
		assert.Equal(s.T(), http.StatusBadRequest, resp.StatusCode, tc.name)
	}
}

func (s *HandlersSuite) TestUpcomingReminderWindow() {
	now := time.Now()
	s.createReminder("today", now.Add(time.Hour))
	s.createReminder("in five days", now.AddDate(0, 0, 5))
	s.createReminder("in nine days", now.AddDate(0, 0, 9))

	var upcoming []struct {
		Title  string `json:"title"`
		Bucket string `json:"bucket"`
	}
	resp := s.request(http.MethodGet, "/api/v1/reminders/upcoming", s.token, nil, &upcoming)

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Len(s.T(), upcoming, 2)
	assert.Equal(s.T(), "today", upcoming[0].Title)
	assert.Equal(s.T(), "due_today", upcoming[0].Bucket)
	assert.Equal(s.T(), "in five days", upcoming[1].Title)
	assert.Equal(s.T(), "upcoming", upcoming[1].Bucket)
}

func (s *HandlersSuite) TestDeactivatedReminderLeavesWindow() {
	now := time.Now()
	id := s.createReminder("gym", now.AddDate(0, 0, 2))

	resp := s.request(http.MethodPut, "/api/v1/reminders/"+id, s.token,
		fiber.Map{"is_active": false}, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var upcoming []map[string]any
	resp = s.request(http.MethodGet, "/api/v1/reminders/upcoming", s.token, nil, &upcoming)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Empty(s.T(), upcoming)
}

func (s *HandlersSuite) TestReminderBuckets() {
	now := time.Now()
	s.createReminder("overdue bill", now.AddDate(0, 0, -3))
	s.createReminder("tomorrow bill", now.AddDate(0, 0, 1))

	var all []struct {
		Title  string `json:"title"`
		Bucket string `json:"bucket"`
	}
	resp := s.request(http.MethodGet, "/api/v1/reminders", s.token, nil, &all)

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Len(s.T(), all, 2)
	assert.Equal(s.T(), "overdue", all[0].Bucket)
	assert.Equal(s.T(), "due_tomorrow", all[1].Bucket)
}
