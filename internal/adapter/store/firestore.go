package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	"google.golang.org/api/option"
)

// FirestoreStore keeps user documents in a firestore collection.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

var _ app.Store = &FirestoreStore{}

// NewFirestoreStore connects to firestore using service account credentials file.
// Empty credentialsFile falls back to application default credentials.
func NewFirestoreStore(ctx context.Context, projectID string, credentialsFile string, collection string) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &FirestoreStore{
		client:     client,
		collection: collection,
	}, nil
}

// MergeUser merges user record into document with user id.
func (s *FirestoreStore) MergeUser(ctx context.Context, userID string, rec app.UserRecord) error {
	doc := map[string]interface{}(userDocument(rec))
	doc[fieldPointsBreakdown] = map[string]interface{}(doc[fieldPointsBreakdown].(Document))
	// Firestore stores native timestamps.
	doc[fieldLastUpdated] = rec.LastUpdated.UTC()

	if _, err := s.client.Collection(s.collection).Doc(userID).Set(ctx, doc, firestore.MergeAll); err != nil {
		return fmt.Errorf("merging firestore document: %w", err)
	}
	return nil
}

// Close closes firestore client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
