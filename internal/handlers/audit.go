package handlers

import (
	"net/http"
	"strconv"

	"retrofit-tracker/internal/database"
	"retrofit-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// ListAuditLogs returns the journal newest first, optionally filtered by
// entity and action. Capped at 200 rows per page.
func ListAuditLogs(c *gin.Context) {
	dbq := database.DB.Preload("User").Order("created_at desc")

	if entity := c.Query("entity"); entity != "" {
		dbq = dbq.Where("entity = ?", entity)
	}
	if action := c.Query("action"); action != "" {
		dbq = dbq.Where("action = ?", action)
	}

	page := 1
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}
	const pageSize = 200

	var logs []models.AuditLog
	if err := dbq.Limit(pageSize).Offset((page - 1) * pageSize).Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load audit logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page, "logs": logs})
}
