package model

import "time"

type DeviceToken struct {
	Token     string    `firestore:"token,omitempty"`
	Platform  string    `firestore:"platform,omitempty"` // "ios", "android", "web"
	UpdatedAt time.Time `firestore:"updatedat,omitempty"`
}
