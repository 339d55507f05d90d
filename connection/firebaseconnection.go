package connection

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Clients holds the Firebase-backed collaborators. Built once per process
// and passed down explicitly; no package-level singleton.
type Clients struct {
	Firestore *firestore.Client
	Messaging *messaging.Client
}

func FBConnection(ctx context.Context, serviceAccountKeyPath string) (*Clients, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(serviceAccountKeyPath))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("get Firestore client: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("get messaging client: %w", err)
	}

	return &Clients{
		Firestore: firestoreClient,
		Messaging: messagingClient,
	}, nil
}
