package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rvieira/portfolio-cms/models"
)

type ProjectCategoryRepo struct {
	db *gorm.DB
}

func NewProjectCategoryRepo(db *gorm.DB) *ProjectCategoryRepo {
	return &ProjectCategoryRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectCategoryRepo) GetDB() *gorm.DB {
	return r.db
}

// FindByProjectID returns all category links for a project
func (r *ProjectCategoryRepo) FindByProjectID(projectID uuid.UUID) ([]*models.ProjectCategory, error) {
	var projectCategories []*models.ProjectCategory
	err := r.db.Where("project_id = ?", projectID).Find(&projectCategories).Error
	return projectCategories, err
}

// Add inserts a new project category link into the database
func (r *ProjectCategoryRepo) Add(projectCategory *models.ProjectCategory) error {
	if projectCategory.ID == uuid.Nil {
		projectCategory.ID = uuid.New()
	}
	return r.db.Create(projectCategory).Error
}

// DeleteByProjectID removes every category link referencing the project
func (r *ProjectCategoryRepo) DeleteByProjectID(projectID uuid.UUID) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.ProjectCategory{}).Error
}

// CountByProjectID returns the number of category links for a project
func (r *ProjectCategoryRepo) CountByProjectID(projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectCategory{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}
