package connection

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"taskreminder/controller/device"
	"taskreminder/controller/notification"
	"taskreminder/reminder"
)

func StartServer(port string, clients *Clients, svc *reminder.Service, log *zap.Logger) {
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.Use(cors.Default())

	notification.NotificationController(router, svc)
	device.DeviceController(router, clients.Firestore)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}
