package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *HandlersSuite) TestRegisterRejectsDuplicates() {
	resp := s.request(http.MethodPost, "/api/v1/auth/register", "",
		fiber.Map{"username": "ana", "password": "anotherpass"}, nil)

	assert.Equal(s.T(), http.StatusConflict, resp.StatusCode)
}

func (s *HandlersSuite) TestRegisterValidation() {
	tests := []struct {
		name string
		body fiber.Map
	}{
		{"missing username", fiber.Map{"password": "supersecret"}},
		{"missing password", fiber.Map{"username": "bob"}},
		{"short password", fiber.Map{"username": "bob", "password": "short"}},
	}

	for _, tc := range tests {
		resp := s.request(http.MethodPost, "/api/v1/auth/register", "", tc.body, nil)
		assert.Equal(s.T(), http.StatusBadRequest, resp.StatusCode, tc.name)
	}
}

func (s *HandlersSuite) TestLogin() {
	var body struct {
		Token string `json:"token"`
	}
	resp := s.request(http.MethodPost, "/api/v1/auth/login", "",
		fiber.Map{"username": "ana", "password": "supersecret"}, &body)

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.NotEmpty(s.T(), body.Token)
}

func (s *HandlersSuite) TestLoginBadCredentials() {
	wrongPass := s.request(http.MethodPost, "/api/v1/auth/login", "",
		fiber.Map{"username": "ana", "password": "wrong-password"}, nil)
	unknownUser := s.request(http.MethodPost, "/api/v1/auth/login", "",
		fiber.Map{"username": "nobody", "password": "supersecret"}, nil)

	// Unknown user and wrong password are indistinguishable.
	assert.Equal(s.T(), http.StatusUnauthorized, wrongPass.StatusCode)
	assert.Equal(s.T(), http.StatusUnauthorized, unknownUser.StatusCode)
}

func (s *HandlersSuite) TestProtectedRoutesRequireToken() {
	noToken := s.request(http.MethodGet, "/api/v1/accounts", "", nil, nil)
	badToken := s.request(http.MethodGet, "/api/v1/accounts", "not-a-jwt", nil, nil)

	assert.Equal(s.T(), http.StatusUnauthorized, noToken.StatusCode)
	assert.Equal(s.T(), http.StatusUnauthorized, badToken.StatusCode)
}

func (s *HandlersSuite) TestProfileCompletion() {
	var user struct {
		ProfileCompleted bool `json:"profile_completed"`
	}
	resp := s.request(http.MethodGet, "/api/v1/profile", s.token, nil, &user)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.False(s.T(), user.ProfileCompleted)

	resp = s.request(http.MethodPut, "/api/v1/profile", s.token, fiber.Map{
		"email":      "ana@example.com",
		"first_name": "Ana",
		"last_name":  "Pérez",
		"birth_date": "1995-04-12T00:00:00Z",
	}, &user)

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.True(s.T(), user.ProfileCompleted)
}
