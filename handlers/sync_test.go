package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *HandlersSuite) TestBatchSyncIsReplaySafe() {
	account := s.createAccount(s.token, "Banco", "Banco")
	batch := []fiber.Map{
		{
			"client_id": "local-1", "account_id": account, "amount": "10.00",
			"type": "EXPENSE", "category": "Ocio", "date": "2025-03-01T00:00:00Z",
		},
		{
			"client_id": "local-2", "account_id": account, "amount": "20.00",
			"type": "INCOME", "category": "Salario", "date": "2025-03-02T00:00:00Z",
		},
	}

	var first SyncResponse
	resp := s.request(http.MethodPost, "/api/v1/sync", s.token, batch, &first)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), 2, first.Synced)
	assert.Equal(s.T(), 0, first.Duplicates)

	// Draining the same outbox again inserts nothing.
	var second SyncResponse
	resp = s.request(http.MethodPost, "/api/v1/sync", s.token, batch, &second)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), 0, second.Synced)
	assert.Equal(s.T(), 2, second.Duplicates)

	var txs []map[string]any
	resp = s.request(http.MethodGet, "/api/v1/transactions", s.token, nil, &txs)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Len(s.T(), txs, 2)
}

func (s *HandlersSuite) TestBatchSyncRejectsBadEntries() {
	account := s.createAccount(s.token, "Banco", "Banco")
	batch := []fiber.Map{
		{ // no client id
			"account_id": account, "amount": "10.00",
			"type": "EXPENSE", "category": "Ocio", "date": "2025-03-01T00:00:00Z",
		},
		{ // foreign account
			"client_id": "local-1", "account_id": uuid.NewString(), "amount": "10.00",
			"type": "EXPENSE", "category": "Ocio", "date": "2025-03-01T00:00:00Z",
		},
		{ // non-positive amount
			"client_id": "local-2", "account_id": account, "amount": "0",
			"type": "EXPENSE", "category": "Ocio", "date": "2025-03-01T00:00:00Z",
		},
		{ // valid
			"client_id": "local-3", "account_id": account, "amount": "5.00",
			"type": "EXPENSE", "category": "Ocio", "date": "2025-03-01T00:00:00Z",
		},
	}

	var out SyncResponse
	resp := s.request(http.MethodPost, "/api/v1/sync", s.token, batch, &out)

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), 1, out.Synced)
	assert.Equal(s.T(), 0, out.Duplicates)
	assert.Equal(s.T(), 3, out.Rejected)
}

func (s *HandlersSuite) TestBatchSyncDedupesWithinOneBatch() {
	account := s.createAccount(s.token, "Banco", "Banco")
	entry := fiber.Map{
		"client_id": "local-1", "account_id": account, "amount": "10.00",
		"type": "EXPENSE", "category": "Ocio", "date": "2025-03-01T00:00:00Z",
	}

	var out SyncResponse
	resp := s.request(http.MethodPost, "/api/v1/sync", s.token, []fiber.Map{entry, entry}, &out)

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), 1, out.Synced)
	assert.Equal(s.T(), 1, out.Duplicates)
}
