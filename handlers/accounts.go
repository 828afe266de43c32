package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"finboard/models"
)

// ListAccounts lists active accounts
// @Summary      List accounts
// @Description  Get all active accounts with their running balances.
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Account}
// @Router       /accounts [get]
// @Security     BasicAuth
func (api *API) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := api.Store.ListAccounts(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

// CreateAccount creates a new account
// @Summary      Create account
// @Description  Create a checking, savings, or investment account with zero balance.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        account  body      models.AccountInput  true  "Account contents"
// @Success      201      {object}  Response{data=map[string]any}
// @Failure      400      {object}  Response{error=string}
// @Router       /accounts [post]
// @Security     BasicAuth
func (api *API) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var input models.AccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	a, err := api.Store.CreateAccount(r.Context(), input)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Account added successfully",
		"id":      a.ID,
	})
}

// UpdateAccount partially updates an account
// @Summary      Update account
// @Description  Update any of name, type, color, or balance. Setting the balance directly bypasses transaction-driven maintenance.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Account ID"
// @Param        account  body      models.AccountUpdate  true  "Fields to update"
// @Success      200      {object}  Response{data=map[string]string}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /accounts/{id} [put]
// @Security     BasicAuth
func (api *API) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var update models.AccountUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if msg := update.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if _, err := api.Store.UpdateAccount(r.Context(), id, update); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Account updated successfully"})
}

// DeleteAccount soft-deletes an account
// @Summary      Delete account
// @Description  Deactivate an account. Its balance and transaction history are retained.
// @Tags         accounts
// @Produce      json
// @Param        id   path      int  true  "Account ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /accounts/{id} [delete]
// @Security     BasicAuth
func (api *API) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	if err := api.Store.DeactivateAccount(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}
