package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves /export.
type ExportHandler struct {
	svc    *service.ExportService
	logger *zap.Logger
}

// BattingStats streams the batting leaderboard as an Excel download.
func (h *ExportHandler) BattingStats(c *gin.Context) {
	buf, err := h.svc.BattingWorkbook(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	filename := fmt.Sprintf("batting-stats-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
