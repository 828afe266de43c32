package handlers

import (
	"net/http"

	"finboard/analytics"
)

// GetSummary retrieves the current-month summary
// @Summary      Get monthly summary
// @Description  Totals for the current month (first of the month through today): income, expenses, net income, and per-category expense breakdown.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  Response{data=analytics.Summary}
// @Router       /analytics/summary [get]
// @Security     BasicAuth
func (api *API) GetSummary(w http.ResponseWriter, r *http.Request) {
	txns, err := api.Store.ListTransactions(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics.MonthlySummary(txns, api.Now()))
}

// GetChartData retrieves the 6-month trend series
// @Summary      Get chart data
// @Description  Income and expense totals for the last 6 calendar months including the current one, oldest first.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  Response{data=analytics.ChartData}
// @Router       /analytics/chart-data [get]
// @Security     BasicAuth
func (api *API) GetChartData(w http.ResponseWriter, r *http.Request) {
	txns, err := api.Store.ListTransactions(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics.TrendSeries(txns, api.Now()))
}
