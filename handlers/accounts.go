package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"streamvault/services/accounts"
)

// AccountsHandler handles registration, login, and logout endpoints.
type AccountsHandler struct {
	accountsService *accounts.Service
}

// NewAccountsHandler creates a new accounts handler.
func NewAccountsHandler(accountsService *accounts.Service) *AccountsHandler {
	return &AccountsHandler{accountsService: accountsService}
}

// Register creates a new account.
// POST /register
func (h *AccountsHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid JSON data", http.StatusBadRequest)
		return
	}

	_, err := h.accountsService.Register(r.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, accounts.ErrMissingFields):
		jsonError(w, "Invalid JSON data", http.StatusBadRequest)
		return
	case errors.Is(err, accounts.ErrDuplicateUser):
		jsonError(w, "Username or email already registered", http.StatusConflict)
		return
	case err != nil:
		jsonError(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Registered successfully"})
}

// Login verifies credentials and issues a bearer token.
// POST /login
func (h *AccountsHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid JSON data", http.StatusBadRequest)
		return
	}

	result, err := h.accountsService.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, accounts.ErrUserNotFound):
		jsonError(w, "User not found", http.StatusNotFound)
		return
	case errors.Is(err, accounts.ErrInvalidCredentials):
		jsonError(w, "Login Unsuccessful", http.StatusUnauthorized)
		return
	case err != nil:
		jsonError(w, "Login failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Login Successful",
		"token":   result.Token,
	})
}

// Logout invalidates the presented session token.
// POST /logout
func (h *AccountsHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.accountsService.Logout(r.Context(), bearerToken(r)); err != nil {
		jsonError(w, "Logout failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
