package database

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rvieira/portfolio-cms/models"
)

// setupTestDatabase opens a throwaway sqlite database with the full schema.
func setupTestDatabase(t *testing.T) Database {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return New(db)
}

func addBlog(t *testing.T, repo *BlogRepo, title, slug string, status models.BlogStatus, categoryID uuid.UUID) *models.Blog {
	t.Helper()

	blog := &models.Blog{
		Title:      title,
		Slug:       slug,
		Excerpt:    "excerpt",
		Content:    "content",
		Status:     status,
		ImageURL:   "https://example.com/" + slug + ".png",
		CategoryID: categoryID,
	}
	if err := repo.Add(blog); err != nil {
		t.Fatalf("failed to add blog %q: %v", slug, err)
	}
	return blog
}

func addCategory(t *testing.T, repo *CategoryRepo, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Description: name + " posts"}
	if err := repo.Add(category); err != nil {
		t.Fatalf("failed to add category %q: %v", name, err)
	}
	return category
}

func TestBlogRepoFindByIDReturnsNilForMissingRow(t *testing.T) {
	t.Parallel()

	db := setupTestDatabase(t)

	blog, err := db.BlogRepo().FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if blog != nil {
		t.Fatalf("expected nil for missing row, got %#v", blog)
	}
}

func TestBlogRepoFindBySlug(t *testing.T) {
	t.Parallel()

	db := setupTestDatabase(t)
	category := addCategory(t, db.CategoryRepo(), "Engineering")
	addBlog(t, db.BlogRepo(), "Hello", "hello", models.BlogStatusPublished, category.ID)

	found, err := db.BlogRepo().FindBySlug("hello")
	if err != nil {
		t.Fatalf("FindBySlug returned error: %v", err)
	}
	if found == nil || found.Title != "Hello" {
		t.Fatalf("expected the hello blog, got %#v", found)
	}
	if found.Category.Name != "Engineering" {
		t.Fatalf("expected category preloaded, got %#v", found.Category)
	}

	missing, err := db.BlogRepo().FindBySlug("absent")
	if err != nil {
		t.Fatalf("FindBySlug returned error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing slug, got %#v", missing)
	}
}

func TestBlogRepoSlugExistsHonorsExclusion(t *testing.T) {
	t.Parallel()

	db := setupTestDatabase(t)
	category := addCategory(t, db.CategoryRepo(), "Engineering")
	blog := addBlog(t, db.BlogRepo(), "Hello", "hello", models.BlogStatusPublished, category.ID)

	exists, err := db.BlogRepo().SlugExists("hello", uuid.Nil)
	if err != nil {
		t.Fatalf("SlugExists returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected slug to exist without exclusion")
	}

	exists, err = db.BlogRepo().SlugExists("hello", blog.ID)
	if err != nil {
		t.Fatalf("SlugExists returned error: %v", err)
	}
	if exists {
		t.Fatal("expected a row's own slug to be excluded")
	}

	exists, err = db.BlogRepo().SlugExists("hello", uuid.New())
	if err != nil {
		t.Fatalf("SlugExists returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected slug to still exist when excluding another id")
	}
}

func TestBlogRepoFindPageReturnsTotalAcrossPages(t *testing.T) {
	t.Parallel()

	db := setupTestDatabase(t)
	category := addCategory(t, db.CategoryRepo(), "Engineering")
	for i := 0; i < 5; i++ {
		addBlog(t, db.BlogRepo(), "Post", "post-"+uuid.NewString(), models.BlogStatusPublished, category.ID)
	}

	page, total, err := db.BlogRepo().FindPage(0, 2)
	if err != nil {
		t.Fatalf("FindPage returned error: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 rows on the first page, got %d", len(page))
	}
	if total != 5 {
		t.Fatalf("expected total of 5, got %d", total)
	}

	last, total, err := db.BlogRepo().FindPage(4, 2)
	if err != nil {
		t.Fatalf("FindPage returned error: %v", err)
	}
	if len(last) != 1 {
		t.Fatalf("expected 1 row on the last page, got %d", len(last))
	}
	if total != 5 {
		t.Fatalf("expected total of 5, got %d", total)
	}
}

func TestBlogRepoCountByStatus(t *testing.T) {
	t.Parallel()

	db := setupTestDatabase(t)
	category := addCategory(t, db.CategoryRepo(), "Engineering")
	addBlog(t, db.BlogRepo(), "A", "a", models.BlogStatusPublished, category.ID)
	addBlog(t, db.BlogRepo(), "B", "b", models.BlogStatusPublished, category.ID)
	addBlog(t, db.BlogRepo(), "C", "c", models.BlogStatusUnpublished, category.ID)

	published, err := db.BlogRepo().CountByStatus(models.BlogStatusPublished)
	if err != nil {
		t.Fatalf("CountByStatus returned error: %v", err)
	}
	unpublished, err := db.BlogRepo().CountByStatus(models.BlogStatusUnpublished)
	if err != nil {
		t.Fatalf("CountByStatus returned error: %v", err)
	}
	if published != 2 || unpublished != 1 {
		t.Fatalf("expected 2 published and 1 unpublished, got %d and %d", published, unpublished)
	}
}

func TestUserRepoEnsureUserIsIdempotent(t *testing.T) {
	t.Parallel()

	db := setupTestDatabase(t)
	repo := db.UserRepo()

	first := &models.User{Name: "Admin", Email: "admin@example.com", Password: "hash-1"}
	if err := repo.EnsureUser(first); err != nil {
		t.Fatalf("EnsureUser returned error: %v", err)
	}

	second := &models.User{Name: "Admin", Email: "admin@example.com", Password: "hash-2"}
	if err := repo.EnsureUser(second); err != nil {
		t.Fatalf("EnsureUser returned error: %v", err)
	}

	stored, err := repo.FindByEmail("admin@example.com")
	if err != nil {
		t.Fatalf("FindByEmail returned error: %v", err)
	}
	if stored == nil {
		t.Fatal("expected the seeded user to exist")
	}
	if stored.Password != "hash-1" {
		t.Fatalf("expected existing credentials untouched, got %q", stored.Password)
	}
}
