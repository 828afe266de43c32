package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"finboard/models"
)

// ListTransactions lists all transactions
// @Summary      List transactions
// @Description  Get all transactions, newest date first, annotated with the resolved account name.
// @Tags         transactions
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Transaction}
// @Router       /transactions [get]
// @Security     BasicAuth
func (api *API) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := api.Store.ListTransactions(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txns)
}

// CreateTransaction creates a new transaction
// @Summary      Create transaction
// @Description  Record an income or expense and apply it to the owning account's balance.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transaction  body      models.TransactionInput  true  "Transaction contents"
// @Success      201          {object}  Response{data=map[string]any}
// @Failure      400          {object}  Response{error=string}
// @Failure      404          {object}  Response{error=string}
// @Router       /transactions [post]
// @Security     BasicAuth
func (api *API) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var input models.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	t, err := api.Store.CreateTransaction(r.Context(), input)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("transaction created", "id", t.ID, "kind", t.Kind, "amount_cents", int64(t.Amount), "account_id", t.AccountID)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Transaction added successfully",
		"id":      t.ID,
	})
}

// DeleteTransaction deletes a transaction
// @Summary      Delete transaction
// @Description  Remove a transaction and reverse its effect on the account balance.
// @Tags         transactions
// @Produce      json
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /transactions/{id} [delete]
// @Security     BasicAuth
func (api *API) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	if err := api.Store.DeleteTransaction(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}
