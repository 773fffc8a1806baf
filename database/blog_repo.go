package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rvieira/portfolio-cms/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *BlogRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns all blogs with their category and tags
func (r *BlogRepo) FindAll() ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Preload("Category").Preload("Tags").Find(&blogs).Error
	return blogs, err
}

// FindPage returns one page of blogs plus the total row count
func (r *BlogRepo) FindPage(offset, limit int) ([]*models.Blog, int64, error) {
	var blogs []*models.Blog
	err := r.db.Preload("Category").Preload("Tags").
		Offset(offset).Limit(limit).Find(&blogs).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.Model(&models.Blog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

// FindByID returns a blog by its ID, or nil when no row matches
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("Category").Preload("Tags").First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindBySlug returns a blog by its slug, or nil when no row matches
func (r *BlogRepo) FindBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("Category").Preload("Tags").First(&blog, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// SlugExists reports whether another blog already owns the given slug.
// excludeID skips the row being updated so its own slug does not collide
// with itself; pass uuid.Nil for creates.
func (r *BlogRepo) SlugExists(slug string, excludeID uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Blog{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add inserts a new blog. Tag associations on the struct are linked, not
// upserted, so join rows are created with the parent in a single write.
func (r *BlogRepo) Add(blog *models.Blog) error {
	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	return r.db.Omit("Tags.*", "Category").Create(blog).Error
}

// Update saves an existing blog row without touching its associations
func (r *BlogRepo) Update(blog *models.Blog) error {
	return r.db.Omit("Tags", "Category").Save(blog).Error
}

// ReplaceTags swaps the blog's tag links for the given set
func (r *BlogRepo) ReplaceTags(blog *models.Blog, tags []models.Tag) error {
	return r.db.Model(blog).Association("Tags").Replace(tags)
}

// Delete removes a blog and its tag links
func (r *BlogRepo) Delete(id uuid.UUID) error {
	if err := r.db.Exec("DELETE FROM blog_tags WHERE blog_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Blog{}, "id = ?", id).Error
}

// Count returns the total number of blogs
func (r *BlogRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Blog{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of blogs with the given status
func (r *BlogRepo) CountByStatus(status models.BlogStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Blog{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountByCategory returns the number of blogs referencing a category
func (r *BlogRepo) CountByCategory(categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Blog{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
