package reminder

import (
	"context"

	"firebase.google.com/go/v4/messaging"
)

// FCMSender delivers reminders through Firebase Cloud Messaging, one
// single-token send per device.
type FCMSender struct {
	client *messaging.Client
}

func NewFCMSender(client *messaging.Client) *FCMSender {
	return &FCMSender{client: client}
}

func (s *FCMSender) Send(ctx context.Context, token string, msg Message) error {
	m := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}
	_, err := s.client.Send(ctx, m)
	return err
}

// NotRegistered classifies the FCM failure that means the token is
// permanently invalid and should be removed from the registry.
func (s *FCMSender) NotRegistered(err error) bool {
	return messaging.IsRegistrationTokenNotRegistered(err)
}
