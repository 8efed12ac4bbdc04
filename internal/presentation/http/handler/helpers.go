package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pilotapp/crm-console/internal/application/service"
	"github.com/pilotapp/crm-console/internal/domain/enum"
)

// flowMode reads the mode query parameter, defaulting to the wizard
func flowMode(c *gin.Context) enum.FlowMode {
	mode := enum.FlowMode(c.DefaultQuery("mode", enum.ModeWizard.String()))
	if !mode.IsValid() {
		return ""
	}
	return mode
}

// listQuery reads the dashboard query parameters. Absent search/filter params
// leave the session's stored view untouched; present-but-empty ones clear it.
func listQuery(c *gin.Context) service.ListQuery {
	var q service.ListQuery
	if pageStr := c.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			q.Page = page
		}
	}
	if search, ok := c.GetQuery("search"); ok {
		q.Search = &search
	}
	if filter, ok := c.GetQuery("filter"); ok {
		q.Filter = &filter
	}
	return q
}
