package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entry is a journal entry managed through the admin API. Entries live in the
// blog_entries collection; BSON keys match the documents the site already
// holds, so existing data keeps decoding.
type Entry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug       string             `bson:"slug" json:"slug"`
	Title      string             `bson:"title" json:"title"`
	Content    string             `bson:"content" json:"content"`
	Mood       string             `bson:"mood" json:"mood"`
	CoverImage string             `bson:"coverImage" json:"coverImage"`
	Date       time.Time          `bson:"date" json:"date"`
	Tags       []string           `bson:"tags" json:"tags"`
	Private    bool               `bson:"private" json:"private"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidMoods are the only accepted values for Entry.Mood. Writes with any
// other value are rejected before they reach the store.
var ValidMoods = []string{"Happy", "Grateful", "Peaceful", "Excited", "Thoughtful", "Melancholy", "Anxious", "Hopeful"}

// IsValidMood reports whether mood is one of ValidMoods (case-sensitive).
func IsValidMood(mood string) bool {
	for _, m := range ValidMoods {
		if m == mood {
			return true
		}
	}
	return false
}

// EntryUpdate is a partial update to an entry. A nil field is left untouched.
// One slot per mutable field; the id and both record timestamps are never
// settable by callers.
type EntryUpdate struct {
	Slug       *string
	Title      *string
	Content    *string
	Mood       *string
	CoverImage *string
	Date       *time.Time
	Tags       *[]string
	Private    *bool
}
