package content

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rvieira/portfolio-cms/database"
	"github.com/rvieira/portfolio-cms/errs"
	"github.com/rvieira/portfolio-cms/models"
)

// setupDatabase opens a throwaway sqlite database with the full schema.
func setupDatabase(t *testing.T) database.Database {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return database.New(db)
}

// seedTaxonomy creates one category and two tags for inputs to reference.
func seedTaxonomy(t *testing.T, db database.Database) (uuid.UUID, []uuid.UUID) {
	t.Helper()

	category := &models.Category{Name: "Engineering", Description: "Technical writing"}
	if err := db.CategoryRepo().Add(category); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	var tagIDs []uuid.UUID
	for _, name := range []string{"go", "databases"} {
		tag := &models.Tag{Name: name, Color: "#336699"}
		if err := db.TagRepo().Add(tag); err != nil {
			t.Fatalf("failed to seed tag %q: %v", name, err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}
	return category.ID, tagIDs
}

func validBlogInput(categoryID uuid.UUID, tagIDs []uuid.UUID) BlogInput {
	return BlogInput{
		Title:      "Hello, World!",
		Excerpt:    "A short introduction to the blog.",
		Content:    strings.Repeat("Interesting content. ", 5),
		Status:     "PUBLISHED",
		ImageURL:   "https://portfolio-images.s3.us-east-1.amazonaws.com/first.png",
		CategoryID: categoryID,
		TagIDs:     tagIDs,
	}
}

func TestBlogManagerCreateDerivesSlugAndLinksTags(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	categoryID, tagIDs := seedTaxonomy(t, db)
	manager := NewBlogManager(db.BlogRepo(), NewCleaner(&fakeObjectStore{}, "portfolio-images"))

	blog, err := manager.Create(validBlogInput(categoryID, tagIDs))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if blog.Slug != "hello-world" {
		t.Fatalf("expected slug hello-world, got %q", blog.Slug)
	}
	if len(blog.Tags) != 2 {
		t.Fatalf("expected 2 linked tags, got %d", len(blog.Tags))
	}
	if blog.Status != models.BlogStatusPublished {
		t.Fatalf("expected PUBLISHED status, got %q", blog.Status)
	}
}

func TestBlogManagerCreateSuffixesCollidingSlugs(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	categoryID, tagIDs := seedTaxonomy(t, db)
	manager := NewBlogManager(db.BlogRepo(), NewCleaner(&fakeObjectStore{}, "portfolio-images"))

	first, err := manager.Create(validBlogInput(categoryID, tagIDs))
	if err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	second, err := manager.Create(validBlogInput(categoryID, tagIDs))
	if err != nil {
		t.Fatalf("second Create returned error: %v", err)
	}
	third, err := manager.Create(validBlogInput(categoryID, tagIDs))
	if err != nil {
		t.Fatalf("third Create returned error: %v", err)
	}

	if first.Slug != "hello-world" || second.Slug != "hello-world-1" || third.Slug != "hello-world-2" {
		t.Fatalf("unexpected slugs: %q, %q, %q", first.Slug, second.Slug, third.Slug)
	}
}

func TestBlogManagerCreateRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	categoryID, tagIDs := seedTaxonomy(t, db)
	manager := NewBlogManager(db.BlogRepo(), NewCleaner(&fakeObjectStore{}, "portfolio-images"))

	input := validBlogInput(categoryID, tagIDs)
	input.Title = "Hi"

	var apiErr *errs.ApiErr
	if _, err := manager.Create(input); !errors.As(err, &apiErr) {
		t.Fatalf("expected validation ApiErr, got %v", err)
	}
}

func TestBlogManagerUpdateKeepsOwnSlugAndCleansReplacedImage(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	categoryID, tagIDs := seedTaxonomy(t, db)
	store := &fakeObjectStore{}
	manager := NewBlogManager(db.BlogRepo(), NewCleaner(store, "portfolio-images"))

	blog, err := manager.Create(validBlogInput(categoryID, tagIDs))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	input := validBlogInput(categoryID, tagIDs[:1])
	input.ImageURL = "https://portfolio-images.s3.us-east-1.amazonaws.com/second.png"

	updated, warning, err := manager.Update(context.Background(), blog.ID, input)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if warning != "" {
		t.Fatalf("expected no warning, got %q", warning)
	}
	// Same title on the same row must not self-collide into hello-world-1
	if updated.Slug != "hello-world" {
		t.Fatalf("expected slug hello-world after update, got %q", updated.Slug)
	}
	if len(updated.Tags) != 1 {
		t.Fatalf("expected tag links replaced down to 1, got %d", len(updated.Tags))
	}
	if len(store.deleted) != 1 || store.deleted[0] != "first.png" {
		t.Fatalf("expected exactly first.png deleted, got %v", store.deleted)
	}
}

func TestBlogManagerUpdateSucceedsWithWarningWhenCleanupFails(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	categoryID, tagIDs := seedTaxonomy(t, db)
	manager := NewBlogManager(db.BlogRepo(), NewCleaner(&fakeObjectStore{}, "portfolio-images"))

	blog, err := manager.Create(validBlogInput(categoryID, tagIDs))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Swap in a failing store after the create
	failing := NewBlogManager(db.BlogRepo(),
		NewCleaner(&fakeObjectStore{err: errors.New("access denied")}, "portfolio-images"))

	input := validBlogInput(categoryID, tagIDs)
	input.ImageURL = "https://portfolio-images.s3.us-east-1.amazonaws.com/second.png"

	updated, warning, err := failing.Update(context.Background(), blog.ID, input)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if warning == "" {
		t.Fatal("expected a warning when image cleanup fails")
	}
	if updated.ImageURL != input.ImageURL {
		t.Fatalf("expected image URL persisted despite warning, got %q", updated.ImageURL)
	}
}

func TestBlogManagerUpdateMissingBlog(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	categoryID, tagIDs := seedTaxonomy(t, db)
	manager := NewBlogManager(db.BlogRepo(), NewCleaner(&fakeObjectStore{}, "portfolio-images"))

	_, _, err := manager.Update(context.Background(), uuid.New(), validBlogInput(categoryID, tagIDs))
	if !errs.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestBlogManagerDeleteRemovesRowJoinRowsAndImage(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	categoryID, tagIDs := seedTaxonomy(t, db)
	store := &fakeObjectStore{}
	manager := NewBlogManager(db.BlogRepo(), NewCleaner(store, "portfolio-images"))

	blog, err := manager.Create(validBlogInput(categoryID, tagIDs))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	warning, err := manager.Delete(context.Background(), blog.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if warning != "" {
		t.Fatalf("expected no warning, got %q", warning)
	}

	gone, err := db.BlogRepo().FindByID(blog.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if gone != nil {
		t.Fatal("expected blog row to be deleted")
	}

	var joinRows int64
	if err := db.BlogRepo().GetDB().Table("blog_tags").
		Where("blog_id = ?", blog.ID).Count(&joinRows).Error; err != nil {
		t.Fatalf("failed to count join rows: %v", err)
	}
	if joinRows != 0 {
		t.Fatalf("expected 0 join rows after delete, got %d", joinRows)
	}

	if len(store.deleted) != 1 || store.deleted[0] != "first.png" {
		t.Fatalf("expected first.png deleted, got %v", store.deleted)
	}
}

func TestBlogManagerDeleteMissingBlog(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	manager := NewBlogManager(db.BlogRepo(), NewCleaner(&fakeObjectStore{}, "portfolio-images"))

	if _, err := manager.Delete(context.Background(), uuid.New()); !errs.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
