package models

import "github.com/google/uuid"

// ProjectCategory links a project to a category
type ProjectCategory struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID  uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index:idx_project_category_project_id;uniqueIndex:idx_project_category_unique"`
	CategoryID uuid.UUID `json:"categoryId" db:"category_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_category_unique"`

	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}
