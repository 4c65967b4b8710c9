package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fieldmap/internal/aggregate"
	"fieldmap/internal/model"
)

// TrendsResponse bundles the three trend series.
type TrendsResponse struct {
	Year     []aggregate.TrendPoint `json:"year"`
	Month    []aggregate.TrendPoint `json:"month"`
	Designer []aggregate.TrendPoint `json:"designer"`
}

// ListRecords returns the enriched canonical record set.
// GET /api/records
func (h *Handler) ListRecords(c *gin.Context) {
	records := h.store.Records()
	c.JSON(http.StatusOK, gin.H{
		"total":   len(records),
		"records": records,
	})
}

// ListProjects returns the filtered, grouped project list.
// GET /api/projects?year=&month=
func (h *Handler) ListProjects(c *gin.Context) {
	year, month := filterParams(c)
	filtered := aggregate.Filter(h.store.Records(), year, month)
	groups := aggregate.GroupProjects(filtered)

	c.JSON(http.StatusOK, gin.H{
		"total":    len(groups),
		"projects": groups,
	})
}

// GetSummary returns the aggregate summary over the filtered set.
// GET /api/summary?year=&month=
func (h *Handler) GetSummary(c *gin.Context) {
	year, month := filterParams(c)
	filtered := aggregate.Filter(h.store.Records(), year, month)
	c.JSON(http.StatusOK, aggregate.Summarize(filtered))
}

// GetTrends returns the year, month and designer trend series.
// GET /api/trends?year=&month=
func (h *Handler) GetTrends(c *gin.Context) {
	year, month := filterParams(c)
	records := h.store.Records()
	filtered := aggregate.Filter(records, year, month)

	c.JSON(http.StatusOK, TrendsResponse{
		Year:     aggregate.YearTrend(records),
		Month:    aggregate.MonthTrend(records, year),
		Designer: aggregate.DesignerTrend(filtered),
	})
}

// filterParams reads the year/month query filters; absent or malformed
// values mean "all".
func filterParams(c *gin.Context) (year, month int) {
	year = queryInt(c, "year", model.YearAll)
	month = queryInt(c, "month", model.MonthAll)
	return year, month
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
