package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldmap/internal/aggregate"
	"fieldmap/internal/model"
)

// StatusResponse is the system status for the dashboard shell.
type StatusResponse struct {
	Initialized        bool   `json:"initialized"`
	RecordCount        int    `json:"recordCount"`
	ProjectCount       int    `json:"projectCount"`
	MissingCoordinates int    `json:"missingCoordinates"`
	Filename           string `json:"filename"`
	LastImportTime     string `json:"lastImportTime"`
}

// GetStatus returns the current dataset status.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	records := h.store.Records()
	if len(records) == 0 {
		c.JSON(http.StatusOK, StatusResponse{Initialized: false})
		return
	}

	summary := aggregate.Summarize(aggregate.Filter(records, model.YearAll, model.MonthAll))
	filename, importedAt := h.store.LastImport()

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:        true,
		RecordCount:        len(records),
		ProjectCount:       summary.ProjectCount,
		MissingCoordinates: summary.MissingCoordinates,
		Filename:           filename,
		LastImportTime:     importedAt.Format("2006-01-02 15:04:05"),
	})
}
