package reminder

import (
	"testing"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
)

func TestDueTaskFromDocSkipsMalformed(t *testing.T) {
	store := NewFirestoreStore(nil, zap.NewNop())

	// A snapshot carrying no decodable data fails DataTo the same way a
	// document with mistyped fields does. The scan must skip it, not
	// abort: one bad record may not take down reminders for every user.
	doc := &firestore.DocumentSnapshot{
		Ref: &firestore.DocumentRef{
			ID:   "t1",
			Path: "projects/p/databases/d/documents/Users/u1/Tasks/t1",
		},
	}

	if _, ok := store.dueTaskFromDoc(doc); ok {
		t.Error("malformed task document must be skipped, not returned")
	}
}
