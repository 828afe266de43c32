package handlers

import (
	"log/slog"
	"net/http"
)

// WipeData deletes all user data
// @Summary      Wipe all data
// @Description  Delete every transaction, budget, and goal and reset account balances to zero. Accounts themselves are kept.
// @Tags         data
// @Produce      json
// @Success      200  {object}  Response{data=map[string]string}
// @Router       /data/wipe [delete]
// @Security     BasicAuth
func (api *API) WipeData(w http.ResponseWriter, r *http.Request) {
	if err := api.Store.Wipe(r.Context()); err != nil {
		writeStoreError(w, err)
		return
	}
	slog.Info("all data wiped")
	writeJSON(w, http.StatusOK, map[string]string{"message": "All data has been wiped successfully"})
}
