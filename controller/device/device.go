package device

import (
	"context"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskreminder/dto"
	"taskreminder/middleware"
	"taskreminder/model"
	"taskreminder/services"
)

func DeviceController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/device", middleware.AccessTokenMiddleware())
	{
		routes.PUT("", func(c *gin.Context) {
			RegisterDevice(c, firestoreClient)
		})
		routes.DELETE("", func(c *gin.Context) {
			UnregisterDevice(c, firestoreClient)
		})
	}
}

// RegisterDevice stores the caller's push token under
// Users/{uid}/DeviceTokens/{token}. Keyed by token, so re-registering the
// same device overwrites instead of duplicating.
func RegisterDevice(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	var deviceReq dto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&deviceReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := context.Background()
	_, err := services.GetUserDataByUserid(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	newdevice := model.DeviceToken{
		Token:     deviceReq.Token,
		Platform:  deviceReq.Platform,
		UpdatedAt: time.Now(),
	}

	_, err = firestoreClient.Collection("Users").Doc(userId).Collection("DeviceTokens").Doc(deviceReq.Token).Set(ctx, newdevice)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to register device"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Device registered successfully"})
}

func UnregisterDevice(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	var deviceReq dto.UnregisterDeviceRequest
	if err := c.ShouldBindJSON(&deviceReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := context.Background()
	_, err := firestoreClient.Collection("Users").Doc(userId).Collection("DeviceTokens").Doc(deviceReq.Token).Delete(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		c.JSON(500, gin.H{"error": "Failed to unregister device"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Device unregistered successfully"})
}
