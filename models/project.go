package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project with its tag and category links
type Project struct {
	ID          uuid.UUID     `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string        `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string        `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_project_slug"`
	Description string        `json:"description" db:"description" gorm:"type:text;not null"`
	Status      ProjectStatus `json:"status" db:"status" gorm:"type:text;not null;default:'active'"`
	ImageURL    string        `json:"imageUrl" db:"image_url" gorm:"type:text"`
	ProjectURL  string        `json:"projectUrl" db:"project_url" gorm:"type:text"`
	GithubURL   string        `json:"githubUrl" db:"github_url" gorm:"type:text"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Tags       []ProjectTag      `json:"tags,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	Categories []ProjectCategory `json:"categories,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}
