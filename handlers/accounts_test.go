package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createAccount is a fixture helper returning the new account id.
func (s *HandlersSuite) createAccount(token, name, typ string) string {
	var out struct {
		ID string `json:"id"`
	}
	resp := s.request(http.MethodPost, "/api/v1/accounts", token,
		fiber.Map{"name": name, "type": typ}, &out)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	return out.ID
}

// createTransaction is a fixture helper returning the new transaction id.
func (s *HandlersSuite) createTransaction(token, accountID, amount, typ, category, date string) string {
	var out struct {
		ID string `json:"id"`
	}
	resp := s.request(http.MethodPost, "/api/v1/transactions", token, fiber.Map{
		"account_id": accountID,
		"amount":     amount,
		"type":       typ,
		"category":   category,
		"date":       date,
	}, &out)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	return out.ID
}

type accountViewBody struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance struct {
		Income   string `json:"income"`
		Expenses string `json:"expenses"`
		Balance  string `json:"balance"`
	} `json:"balance"`
}

func (s *HandlersSuite) TestAccountBalanceView() {
	id := s.createAccount(s.token, "Banco", "Banco")
	s.createTransaction(s.token, id, "3000.00", "INCOME", "Salario", "2025-03-01T00:00:00Z")
	s.createTransaction(s.token, id, "150.50", "EXPENSE", "Alimentación", "2025-03-02T00:00:00Z")

	var view accountViewBody
	resp := s.request(http.MethodGet, "/api/v1/accounts/"+id, s.token, nil, &view)

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), "3000", view.Balance.Income)
	assert.Equal(s.T(), "150.5", view.Balance.Expenses)
	assert.Equal(s.T(), "2849.5", view.Balance.Balance)
}

func (s *HandlersSuite) TestAccountValidation() {
	resp := s.request(http.MethodPost, "/api/v1/accounts", s.token,
		fiber.Map{"name": "  ", "type": "Efectivo"}, nil)

	assert.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlersSuite) TestDeleteAccountCascadesTransactions() {
	id := s.createAccount(s.token, "Efectivo", "Efectivo")
	s.createTransaction(s.token, id, "20.00", "EXPENSE", "Ocio", "2025-03-01T00:00:00Z")

	resp := s.request(http.MethodDelete, "/api/v1/accounts/"+id, s.token, nil, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var txs []map[string]any
	resp = s.request(http.MethodGet, "/api/v1/transactions", s.token, nil, &txs)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Empty(s.T(), txs)
}

func (s *HandlersSuite) TestCrossUserAccessReadsAsNotFound() {
	id := s.createAccount(s.token, "Banco", "Banco")
	other := s.register("bruno", "supersecret")

	get := s.request(http.MethodGet, "/api/v1/accounts/"+id, other, nil, nil)
	update := s.request(http.MethodPut, "/api/v1/accounts/"+id, other, fiber.Map{"name": "hacked"}, nil)
	del := s.request(http.MethodDelete, "/api/v1/accounts/"+id, other, nil, nil)

	assert.Equal(s.T(), http.StatusNotFound, get.StatusCode)
	assert.Equal(s.T(), http.StatusNotFound, update.StatusCode)
	assert.Equal(s.T(), http.StatusNotFound, del.StatusCode)
}

func (s *HandlersSuite) TestTransactionValidation() {
	id := s.createAccount(s.token, "Banco", "Banco")

	tests := []struct {
		name string
		body fiber.Map
		want int
	}{
		{"negative amount", fiber.Map{
			"account_id": id, "amount": "-5", "type": "EXPENSE",
			"category": "Ocio", "date": "2025-03-01T00:00:00Z",
		}, http.StatusBadRequest},
		{"bad type", fiber.Map{
			"account_id": id, "amount": "5", "type": "TRANSFER",
			"category": "Ocio", "date": "2025-03-01T00:00:00Z",
		}, http.StatusBadRequest},
		{"missing category", fiber.Map{
			"account_id": id, "amount": "5", "type": "EXPENSE",
			"date": "2025-03-01T00:00:00Z",
		}, http.StatusBadRequest},
	}

	for _, tc := range tests {
		resp := s.request(http.MethodPost, "/api/v1/transactions", s.token, tc.body, nil)
		assert.Equal(s.T(), tc.want, resp.StatusCode, tc.name)
	}
}

func (s *HandlersSuite) TestTransactionOnForeignAccountIsNotFound() {
	other := s.register("carla", "supersecret")
	foreign := s.createAccount(other, "Banco", "Banco")

	resp := s.request(http.MethodPost, "/api/v1/transactions", s.token, fiber.Map{
		"account_id": foreign,
		"amount":     "10.00",
		"type":       "EXPENSE",
		"category":   "Ocio",
		"date":       "2025-03-01T00:00:00Z",
	}, nil)

	assert.Equal(s.T(), http.StatusNotFound, resp.StatusCode)
}

func (s *HandlersSuite) TestTransactionListFilters() {
	banco := s.createAccount(s.token, "Banco", "Banco")
	cash := s.createAccount(s.token, "Efectivo", "Efectivo")
	s.createTransaction(s.token, banco, "100", "EXPENSE", "Ocio", "2025-03-01T00:00:00Z")
	s.createTransaction(s.token, banco, "200", "INCOME", "Salario", "2025-03-05T00:00:00Z")
	s.createTransaction(s.token, cash, "50", "EXPENSE", "Ocio", "2025-03-10T00:00:00Z")

	var txs []map[string]any
	resp := s.request(http.MethodGet, "/api/v1/transactions?account_id="+banco, s.token, nil, &txs)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Len(s.T(), txs, 2)

	resp = s.request(http.MethodGet, "/api/v1/transactions?type=EXPENSE", s.token, nil, &txs)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Len(s.T(), txs, 2)

	// Both bounds inclusive: rows dated exactly on the range edges count.
	resp = s.request(http.MethodGet, "/api/v1/transactions?start_date=2025-03-01&end_date=2025-03-10", s.token, nil, &txs)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Len(s.T(), txs, 3)
}
