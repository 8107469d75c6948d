package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"printcare/internal/database"
	"printcare/internal/httperr"
	"printcare/internal/models"
)

const auditDefaultLimit = 200

func auditQuery(c *gin.Context) ([]models.AuditLog, error) {
	limit := auditDefaultLimit
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}

	q := database.DB.
		Preload("User").
		Order("created_at desc").
		Limit(limit)

	if table := c.Query("table"); table != "" {
		q = q.Where("table_name = ?", table)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	err := q.Find(&logs).Error
	return logs, err
}

func ListAuditLogs(c *gin.Context) {
	logs, err := auditQuery(c)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// ExportAuditLogs writes the filtered audit trail as an Excel workbook.
func ExportAuditLogs(c *gin.Context) {
	logs, err := auditQuery(c)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	f := excelize.NewFile()
	const sheet = "Audit Log"
	index, err := f.NewSheet(sheet)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Time", "Actor", "Action", "Table", "Record ID", "Old Values", "New Values"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, entry := range logs {
		values := []interface{}{
			entry.CreatedAt.Format(time.RFC3339),
			entry.User.Username,
			entry.Action,
			entry.Table,
			entry.RecordID,
			entry.OldValues,
			entry.NewValues,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	filename := fmt.Sprintf("audit-log-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
