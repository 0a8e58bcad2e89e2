package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore adapts a Cloud Firestore client to the Store interface. The
// client comes from the same Firebase app the auth layer initializes.
type Firestore struct {
	client *firestore.Client
	log    *logrus.Logger
}

func NewFirestore(client *firestore.Client, log *logrus.Logger) *Firestore {
	return &Firestore{client: client, log: log}
}

func (f *Firestore) Create(ctx context.Context, collectionPath string, data map[string]interface{}) (string, error) {
	ref, _, err := f.client.Collection(collectionPath).Add(ctx, data)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (f *Firestore) Set(ctx context.Context, docPath string, data map[string]interface{}) error {
	_, err := f.client.Doc(docPath).Set(ctx, data)
	return err
}

func (f *Firestore) Get(ctx context.Context, docPath string) (map[string]interface{}, error) {
	snap, err := f.client.Doc(docPath).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return snap.Data(), nil
}

func (f *Firestore) List(ctx context.Context, collectionPath string) ([]Document, error) {
	snaps, err := f.client.Collection(collectionPath).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(snaps))
	for _, s := range snaps {
		docs = append(docs, Document{ID: s.Ref.ID, Data: s.Data()})
	}
	return docs, nil
}

func (f *Firestore) Update(ctx context.Context, docPath string, partial map[string]interface{}) error {
	_, err := f.client.Doc(docPath).Set(ctx, partial, firestore.MergeAll)
	return err
}

// Delete inherits Firestore's semantics: deleting a non-existent document
// succeeds.
func (f *Firestore) Delete(ctx context.Context, docPath string) error {
	_, err := f.client.Doc(docPath).Delete(ctx)
	return err
}

func (f *Firestore) Subscribe(ctx context.Context, collectionPath string) (*Subscription, error) {
	watchCtx, cancel := context.WithCancel(ctx)
	sub := newSubscription(64, cancel)

	iter := f.client.Collection(collectionPath).Snapshots(watchCtx)

	go func() {
		defer close(sub.snapshots)
		defer iter.Stop()

		for {
			qs, err := iter.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled && watchCtx.Err() == nil {
					f.log.WithError(err).WithField("collection", collectionPath).
						Error("snapshot stream ended")
				}
				return
			}
			docs, err := collectSnapshot(qs)
			if err != nil {
				f.log.WithError(err).WithField("collection", collectionPath).
					Error("failed to read snapshot documents")
				continue
			}
			sub.publish(docs)
		}
	}()

	return sub, nil
}

func collectSnapshot(qs *firestore.QuerySnapshot) ([]Document, error) {
	var docs []Document
	for {
		snap, err := qs.Documents.Next()
		if err == iterator.Done {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
}
