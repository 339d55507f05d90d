package reminder

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskreminder/model"
)

// FirestoreStore backs TaskStore and DeviceRegistry with the per-user
// sub-collections Users/{uid}/Tasks and Users/{uid}/DeviceTokens.
type FirestoreStore struct {
	client *firestore.Client
	log    *zap.Logger
}

func NewFirestoreStore(client *firestore.Client, log *zap.Logger) *FirestoreStore {
	return &FirestoreStore{client: client, log: log}
}

// UnsentTasks queries Tasks across all users with a collection-group query
// on the two equality filters; the due-time filter runs in process. Only a
// failing read aborts the scan: a document that cannot be decoded is
// logged and skipped, so one malformed task record cannot silence
// reminders for everyone else.
func (s *FirestoreStore) UnsentTasks(ctx context.Context) ([]DueTask, error) {
	iter := s.client.CollectionGroup("Tasks").
		Where("sent", "==", false).
		Where("completed", "==", false).
		Documents(ctx)
	defer iter.Stop()

	var tasks []DueTask
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scan tasks: %w", err)
		}
		if d, ok := s.dueTaskFromDoc(doc); ok {
			tasks = append(tasks, d)
		}
	}
	return tasks, nil
}

// dueTaskFromDoc decodes one task document and resolves its owner.
// Returns false for documents that cannot be decoded or that sit outside
// a user sub-collection.
func (s *FirestoreStore) dueTaskFromDoc(doc *firestore.DocumentSnapshot) (DueTask, bool) {
	var task model.Task
	if err := doc.DataTo(&task); err != nil {
		s.log.Warn("Skipping task document with malformed data",
			zap.String("path", doc.Ref.Path),
			zap.Error(err),
		)
		return DueTask{}, false
	}
	if task.TaskID == "" {
		task.TaskID = doc.Ref.ID
	}

	// Tasks/{taskID} -> parent collection -> owning user document.
	owner := doc.Ref.Parent.Parent
	if owner == nil {
		return DueTask{}, false
	}
	return DueTask{UserID: owner.ID, Task: task}, true
}

// MarkSent flips sent=true and stamps sentat on every task in one write
// batch, committed atomically. Firestore batches cap at 500 writes; a tick
// with more due tasks than that is outside this system's scale.
func (s *FirestoreStore) MarkSent(ctx context.Context, tasks []DueTask) error {
	if len(tasks) == 0 {
		return nil
	}

	batch := s.client.Batch()
	for _, t := range tasks {
		ref := s.client.Collection("Users").Doc(t.UserID).Collection("Tasks").Doc(t.Task.TaskID)
		batch.Update(ref, []firestore.Update{
			{Path: "sent", Value: true},
			{Path: "sentat", Value: firestore.ServerTimestamp},
		})
	}

	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("commit sent batch: %w", err)
	}
	return nil
}

func (s *FirestoreStore) Tokens(ctx context.Context, userID string) ([]string, error) {
	docs, err := s.client.Collection("Users").Doc(userID).Collection("DeviceTokens").Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("read device tokens for %s: %w", userID, err)
	}

	var tokens []string
	for _, doc := range docs {
		var device model.DeviceToken
		if err := doc.DataTo(&device); err != nil {
			continue
		}
		if device.Token != "" {
			tokens = append(tokens, device.Token)
		}
	}
	return tokens, nil
}

// DeleteToken removes a token document. The document id is the token
// itself, so registration stays idempotent per device. A concurrent delete
// is not an error.
func (s *FirestoreStore) DeleteToken(ctx context.Context, userID, token string) error {
	_, err := s.client.Collection("Users").Doc(userID).Collection("DeviceTokens").Doc(token).Delete(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("delete device token: %w", err)
	}
	return nil
}
