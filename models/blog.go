package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog represents a blog post with its category and tags
type Blog struct {
	ID         uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title      string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug       string     `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_blog_slug"`
	Excerpt    string     `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	Content    string     `json:"content" db:"content" gorm:"type:text;not null"`
	Status     BlogStatus `json:"status" db:"status" gorm:"type:text;not null;default:'UNPUBLISHED'"`
	ImageURL   string     `json:"imageUrl" db:"image_url" gorm:"type:text"`
	CategoryID uuid.UUID  `json:"categoryId" db:"category_id" gorm:"type:uuid;not null;index:idx_blog_category_id"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Tags     []Tag    `json:"tags,omitempty" gorm:"many2many:blog_tags"`
}
