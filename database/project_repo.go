package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rvieira/portfolio-cms/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns all projects with their tag and category links resolved
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Tags.Tag").Preload("Categories.Category").Find(&projects).Error
	return projects, err
}

// FindPage returns one page of projects plus the total row count
func (r *ProjectRepo) FindPage(offset, limit int) ([]*models.Project, int64, error) {
	var projects []*models.Project
	err := r.db.Preload("Tags.Tag").Preload("Categories.Category").
		Offset(offset).Limit(limit).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// FindByID returns a project by its ID, or nil when no row matches
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Tags.Tag").Preload("Categories.Category").First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug returns a project by its slug, or nil when no row matches
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Tags.Tag").Preload("Categories.Category").First(&project, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// SlugExists reports whether another project already owns the given slug.
// Pass uuid.Nil as excludeID for creates.
func (r *ProjectRepo) SlugExists(slug string, excludeID uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Project{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add inserts a new project together with any tag/category join rows set on
// the struct, as a single write.
func (r *ProjectRepo) Add(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	for i := range project.Tags {
		if project.Tags[i].ID == uuid.Nil {
			project.Tags[i].ID = uuid.New()
		}
	}
	for i := range project.Categories {
		if project.Categories[i].ID == uuid.Nil {
			project.Categories[i].ID = uuid.New()
		}
	}
	return r.db.Omit("Tags.Tag", "Categories.Category").Create(project).Error
}

// Update saves an existing project row without touching its join rows
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Omit("Tags", "Categories").Save(project).Error
}

// Delete removes a project row. Join rows must be removed first by the caller.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// Count returns the total number of projects
func (r *ProjectRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}
