package handlers

import (
	"net/http"

	"github.com/webutsav/admin-console/internal/format"
)

// DashboardHandler serves the aggregate summary for the landing page.
type DashboardHandler struct {
	dashboard DashboardController
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard DashboardController) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary refreshes and returns the dashboard counts. When the refresh fails
// but a previous snapshot exists, the stale snapshot is returned with its
// timestamp so the page can show data with a staleness hint.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Refresh(r.Context())
	if err != nil {
		stale, ok := h.dashboard.Current()
		if !ok {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"summary":    stale,
			"recentJobs": format.Jobs(stale.RecentJobs),
			"stale":      true,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"summary":    summary,
		"recentJobs": format.Jobs(summary.RecentJobs),
		"stale":      false,
	})
}
