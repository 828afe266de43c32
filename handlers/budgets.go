package handlers

import (
	"encoding/json"
	"net/http"

	"finboard/models"
)

// ListBudgets lists the current month's budgets
// @Summary      List budgets
// @Description  Get all budgets for the current calendar month.
// @Tags         budgets
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Budget}
// @Router       /budgets [get]
// @Security     BasicAuth
func (api *API) ListBudgets(w http.ResponseWriter, r *http.Request) {
	month := api.Now().Format("2006-01")
	budgets, err := api.Store.ListBudgetsByMonth(r.Context(), month)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, budgets)
}

// CreateBudget creates a new budget
// @Summary      Create budget
// @Description  Create a per-category spending ceiling for a YYYY-MM month.
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        budget  body      models.BudgetInput  true  "Budget contents"
// @Success      201     {object}  Response{data=map[string]any}
// @Failure      400     {object}  Response{error=string}
// @Router       /budgets [post]
// @Security     BasicAuth
func (api *API) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var input models.BudgetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	id, err := api.Store.CreateBudget(r.Context(), input)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Budget added successfully",
		"id":      id,
	})
}
