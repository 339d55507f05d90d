package notification

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	"taskreminder/middleware"
	"taskreminder/reminder"
)

func NotificationController(router *gin.Engine, svc *reminder.Service) {
	router.POST("/notifications/run", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware(), func(c *gin.Context) {
		RunNotifications(c, svc)
	})
}

// RunNotifications triggers one tick on demand. Same cycle the scheduler
// runs; useful for cron-over-HTTP deployments and for operators.
func RunNotifications(c *gin.Context, svc *reminder.Service) {
	result, err := svc.RunTick(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"details": err.Error(),
			"stack":   string(debug.Stack()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"processed": result.Processed,
		"sent":      result.Sent,
	})
}
