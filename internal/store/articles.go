package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"personaljournal/internal/models"
)

func (s *Store) articles() *mongo.Collection {
	return s.db.Collection(articlesCollection)
}

// ListArticles returns published articles, newest first. Drafts never leave
// the store; the entries collection is read-only from this service.
func (s *Store) ListArticles(ctx context.Context, limit, skip int64) ([]models.Article, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.M{"publishedAt": -1})
	findOptions.SetLimit(limit)
	findOptions.SetSkip(skip)

	cursor, err := s.articles().Find(ctx, bson.M{"draft": false}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	articles := make([]models.Article, 0)
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticleBySlug fetches one published article by its public slug.
func (s *Store) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := s.articles().FindOne(ctx, bson.M{"slug": slug, "draft": false}).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}
