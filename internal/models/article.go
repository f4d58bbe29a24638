package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article is a published post as the public pages consume it. Articles live in
// the entries collection, which is written by an upstream publishing flow;
// this service only reads them. Article and Entry are deliberately separate
// types with ArticleFromEntry as the one mapping between them.
type Article struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug        string             `bson:"slug" json:"slug"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	Category    string             `bson:"category" json:"category"`
	Tags        []string           `bson:"tags" json:"tags"`
	PublishedAt time.Time          `bson:"publishedAt" json:"publishedAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
	ReadTime    string             `bson:"readTime" json:"readTime"`
	Featured    bool               `bson:"featured" json:"featured"`
	Draft       bool               `bson:"draft" json:"draft"`
}

const (
	excerptLength  = 150
	wordsPerMinute = 200
)

// ArticleFromEntry maps a journal entry onto the article shape the public
// pages render: the mood doubles as the category, the excerpt is the leading
// content cut at a word boundary, the entry's logical date becomes the publish
// date, and private entries map to drafts so they never surface publicly.
func ArticleFromEntry(e Entry) Article {
	return Article{
		ID:          e.ID,
		Slug:        e.Slug,
		Title:       e.Title,
		Content:     e.Content,
		Excerpt:     makeExcerpt(e.Content),
		Category:    e.Mood,
		Tags:        e.Tags,
		PublishedAt: e.Date,
		UpdatedAt:   e.UpdatedAt,
		ReadTime:    readTime(e.Content),
		Featured:    false,
		Draft:       e.Private,
	}
}

func makeExcerpt(content string) string {
	content = strings.TrimSpace(content)
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	// Cut on runes, not bytes, so multi-byte text is never split mid-character.
	cut := string(runes[:excerptLength])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

func readTime(content string) string {
	minutes := (len(strings.Fields(content)) + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
