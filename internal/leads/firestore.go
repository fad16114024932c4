package leads

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultCollection = "leads"

// FirestoreStore writes each lead as a document keyed by its ID.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreClient opens a client for projectID. An empty credentialsFile uses application
// default credentials; FIRESTORE_EMULATOR_HOST is honoured by the client library.
func NewFirestoreClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, errors.New("leads: firestore project id is required")
	}
	var opts []option.ClientOption
	if path := strings.TrimSpace(credentialsFile); path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("leads: firestore client: %w", err)
	}
	return client, nil
}

// NewFirestoreStore stores leads in collection, "leads" when empty.
func NewFirestoreStore(client *firestore.Client, collection string) (*FirestoreStore, error) {
	if client == nil {
		return nil, errors.New("leads: firestore client is required")
	}
	collection = strings.TrimSpace(collection)
	if collection == "" {
		collection = defaultCollection
	}
	return &FirestoreStore{client: client, collection: collection}, nil
}

// Save implements Store. Documents are created, never overwritten.
func (s *FirestoreStore) Save(ctx context.Context, lead Lead) error {
	if s == nil || s.client == nil {
		return errors.New("leads: firestore store not initialised")
	}
	_, err := s.client.Collection(s.collection).Doc(lead.ID).Create(ctx, lead)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrDuplicate
		}
		return fmt.Errorf("leads: firestore create %s: %w", lead.ID, err)
	}
	return nil
}
