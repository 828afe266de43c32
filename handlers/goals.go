package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"finboard/models"
)

// ListGoals lists all goals
// @Summary      List goals
// @Description  Get all savings goals with their progress percentages.
// @Tags         goals
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Goal}
// @Router       /goals [get]
// @Security     BasicAuth
func (api *API) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := api.Store.ListGoals(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

// CreateGoal creates a new goal
// @Summary      Create goal
// @Description  Create a savings goal with a target amount and deadline.
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        goal  body      models.GoalInput  true  "Goal contents"
// @Success      201   {object}  Response{data=map[string]any}
// @Failure      400   {object}  Response{error=string}
// @Router       /goals [post]
// @Security     BasicAuth
func (api *API) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var input models.GoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	id, err := api.Store.CreateGoal(r.Context(), input)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Goal added successfully",
		"id":      id,
	})
}

// UpdateGoalProgress updates a goal's current amount
// @Summary      Update goal progress
// @Description  Set how much has been saved toward the goal. Only current_amount is mutable.
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        id        path      int                       true  "Goal ID"
// @Param        progress  body      models.GoalProgressInput  true  "New current amount"
// @Success      200       {object}  Response{data=map[string]string}
// @Failure      400       {object}  Response{error=string}
// @Failure      404       {object}  Response{error=string}
// @Router       /goals/{id} [put]
// @Security     BasicAuth
func (api *API) UpdateGoalProgress(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	var input models.GoalProgressInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := api.Store.UpdateGoalProgress(r.Context(), id, *input.CurrentAmount); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Goal progress updated successfully"})
}
