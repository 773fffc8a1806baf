package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rvieira/portfolio-cms/models"
)

type ProjectTagRepo struct {
	db *gorm.DB
}

func NewProjectTagRepo(db *gorm.DB) *ProjectTagRepo {
	return &ProjectTagRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectTagRepo) GetDB() *gorm.DB {
	return r.db
}

// FindByProjectID returns all tag links for a project
func (r *ProjectTagRepo) FindByProjectID(projectID uuid.UUID) ([]*models.ProjectTag, error) {
	var projectTags []*models.ProjectTag
	err := r.db.Where("project_id = ?", projectID).Find(&projectTags).Error
	return projectTags, err
}

// Add inserts a new project tag link into the database
func (r *ProjectTagRepo) Add(projectTag *models.ProjectTag) error {
	if projectTag.ID == uuid.Nil {
		projectTag.ID = uuid.New()
	}
	return r.db.Create(projectTag).Error
}

// DeleteByProjectID removes every tag link referencing the project
func (r *ProjectTagRepo) DeleteByProjectID(projectID uuid.UUID) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.ProjectTag{}).Error
}

// CountByProjectID returns the number of tag links for a project
func (r *ProjectTagRepo) CountByProjectID(projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectTag{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}
