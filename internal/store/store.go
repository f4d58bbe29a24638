package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"personaljournal/internal/models"
)

const (
	entriesCollection  = "blog_entries"
	articlesCollection = "entries"
)

// ErrNotFound is returned when an id or slug does not resolve to a document.
// Malformed ids map here too: an id that can never match anything is treated
// the same as one that matches nothing.
var ErrNotFound = errors.New("not found")

// Store owns all access to the document store. One Store is built at startup
// around the shared *mongo.Database and injected into the handler layer.
// Every operation is a single-document, single round-trip call; the store's
// per-document atomicity is the only concurrency control.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) entries() *mongo.Collection {
	return s.db.Collection(entriesCollection)
}

// ListEntries returns journal entries sorted by date, newest first. When
// includePrivate is false, entries marked private are filtered out. Entries
// sharing a date come back in the store's natural order.
func (s *Store) ListEntries(ctx context.Context, includePrivate bool) ([]models.Entry, error) {
	filter := bson.M{}
	if !includePrivate {
		filter["private"] = false
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"date": -1})

	cursor, err := s.entries().Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]models.Entry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntryByID fetches one entry by its hex id. ErrNotFound for malformed or
// unknown ids.
func (s *Store) GetEntryByID(ctx context.Context, id string) (*models.Entry, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var entry models.Entry
	err = s.entries().FindOne(ctx, bson.M{"_id": objectID}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateEntry assigns the id and both record timestamps, persists the entry
// and returns the stored record. createdAt and updatedAt are equal at
// creation and only this layer ever sets them.
func (s *Store) CreateEntry(ctx context.Context, entry models.Entry) (*models.Entry, error) {
	now := time.Now()
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if _, err := s.entries().InsertOne(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry applies only the fields set in update and always refreshes
// updatedAt. ErrNotFound when the id matches nothing.
func (s *Store) UpdateEntry(ctx context.Context, id string, update models.EntryUpdate) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now()}
	if update.Slug != nil {
		set["slug"] = *update.Slug
	}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Mood != nil {
		set["mood"] = *update.Mood
	}
	if update.CoverImage != nil {
		set["coverImage"] = *update.CoverImage
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}
	if update.Private != nil {
		set["private"] = *update.Private
	}

	result, err := s.entries().UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEntry removes an entry for good. ErrNotFound when nothing was
// deleted, so a repeated delete fails the same way instead of crashing.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.entries().DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
