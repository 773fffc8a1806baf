package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rvieira/portfolio-cms/models"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *TagRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns all tags from the database
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Find(&tags).Error
	return tags, err
}

// FindPage returns one page of tags plus the total row count
func (r *TagRepo) FindPage(offset, limit int) ([]*models.Tag, int64, error) {
	var tags []*models.Tag
	if err := r.db.Offset(offset).Limit(limit).Find(&tags).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.Model(&models.Tag{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

// FindByID returns a tag by its ID, or nil when no row matches
func (r *TagRepo) FindByID(id uuid.UUID) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Add inserts a new tag into the database
func (r *TagRepo) Add(tag *models.Tag) error {
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	return r.db.Create(tag).Error
}

// Update updates an existing tag in the database
func (r *TagRepo) Update(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

// Delete removes a tag from the database by id
func (r *TagRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Tag{}, "id = ?", id).Error
}

// Count returns the total number of tags
func (r *TagRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Count(&count).Error
	return count, err
}

// BlogUsageCount returns how many blogs reference the tag
func (r *TagRepo) BlogUsageCount(tagID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Table("blog_tags").Where("tag_id = ?", tagID).Count(&count).Error
	return count, err
}
