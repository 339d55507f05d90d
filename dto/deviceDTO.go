package dto

type RegisterDeviceRequest struct {
	Token    string `json:"token" binding:"required"`
	Platform string `json:"platform"`
}

type UnregisterDeviceRequest struct {
	Token string `json:"token" binding:"required"`
}
