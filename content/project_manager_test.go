package content

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/rvieira/portfolio-cms/database"
	"github.com/rvieira/portfolio-cms/errs"
)

func validProjectInput(categoryIDs, tagIDs []uuid.UUID) ProjectInput {
	return ProjectInput{
		Title:       "Portfolio Site",
		Description: "A personal site with a blog and a project showcase.",
		Status:      "active",
		ImageURL:    "https://portfolio-images.s3.us-east-1.amazonaws.com/cover.png",
		ProjectURL:  "https://example.com",
		GithubURL:   "https://github.com/example/portfolio",
		TagIDs:      tagIDs,
		CategoryIDs: categoryIDs,
	}
}

func newProjectManager(db database.Database, store ObjectStore) *ProjectManager {
	return NewProjectManager(
		db.ProjectRepo(),
		db.ProjectTagRepo(),
		db.ProjectCategoryRepo(),
		NewCleaner(store, "portfolio-images"),
	)
}

func TestProjectManagerCreateLinksTagsAndCategories(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	categoryID, tagIDs := seedTaxonomy(t, db)
	manager := newProjectManager(db, &fakeObjectStore{})

	project, err := manager.Create(validProjectInput([]uuid.UUID{categoryID}, tagIDs))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if project.Slug != "portfolio-site" {
		t.Fatalf("expected slug portfolio-site, got %q", project.Slug)
	}
	if len(project.Tags) != 2 {
		t.Fatalf("expected 2 tag links, got %d", len(project.Tags))
	}
	if len(project.Categories) != 1 {
		t.Fatalf("expected 1 category link, got %d", len(project.Categories))
	}
}

func TestProjectManagerCreateSuffixesCollidingSlugs(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	categoryID, tagIDs := seedTaxonomy(t, db)
	manager := newProjectManager(db, &fakeObjectStore{})

	first, err := manager.Create(validProjectInput([]uuid.UUID{categoryID}, tagIDs))
	if err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	second, err := manager.Create(validProjectInput([]uuid.UUID{categoryID}, tagIDs))
	if err != nil {
		t.Fatalf("second Create returned error: %v", err)
	}

	if first.Slug != "portfolio-site" || second.Slug != "portfolio-site-1" {
		t.Fatalf("unexpected slugs: %q, %q", first.Slug, second.Slug)
	}
}

func TestProjectManagerUpdateReplacesMemberships(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	categoryID, tagIDs := seedTaxonomy(t, db)
	store := &fakeObjectStore{}
	manager := newProjectManager(db, store)

	project, err := manager.Create(validProjectInput([]uuid.UUID{categoryID}, tagIDs))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	input := validProjectInput([]uuid.UUID{categoryID}, tagIDs[:1])
	input.ImageURL = "https://portfolio-images.s3.us-east-1.amazonaws.com/cover-v2.png"

	updated, warning, err := manager.Update(context.Background(), project.ID, input)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if warning != "" {
		t.Fatalf("expected no warning, got %q", warning)
	}
	if updated.Slug != "portfolio-site" {
		t.Fatalf("expected slug preserved across update, got %q", updated.Slug)
	}

	tagCount, err := db.ProjectTagRepo().CountByProjectID(project.ID)
	if err != nil {
		t.Fatalf("CountByProjectID returned error: %v", err)
	}
	if tagCount != 1 {
		t.Fatalf("expected tag memberships replaced down to 1, got %d", tagCount)
	}

	if len(store.deleted) != 1 || store.deleted[0] != "cover.png" {
		t.Fatalf("expected exactly cover.png deleted, got %v", store.deleted)
	}
}

func TestProjectManagerUpdateMissingProject(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	categoryID, tagIDs := seedTaxonomy(t, db)
	manager := newProjectManager(db, &fakeObjectStore{})

	_, _, err := manager.Update(context.Background(), uuid.New(),
		validProjectInput([]uuid.UUID{categoryID}, tagIDs))
	if !errs.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestProjectManagerDeleteRemovesJoinRowsBeforeRow(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	categoryID, tagIDs := seedTaxonomy(t, db)
	store := &fakeObjectStore{}
	manager := newProjectManager(db, store)

	project, err := manager.Create(validProjectInput([]uuid.UUID{categoryID}, tagIDs))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	warning, err := manager.Delete(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if warning != "" {
		t.Fatalf("expected no warning, got %q", warning)
	}

	gone, err := db.ProjectRepo().FindByID(project.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if gone != nil {
		t.Fatal("expected project row to be deleted")
	}

	tagCount, err := db.ProjectTagRepo().CountByProjectID(project.ID)
	if err != nil {
		t.Fatalf("CountByProjectID returned error: %v", err)
	}
	categoryCount, err := db.ProjectCategoryRepo().CountByProjectID(project.ID)
	if err != nil {
		t.Fatalf("CountByProjectID returned error: %v", err)
	}
	if tagCount != 0 || categoryCount != 0 {
		t.Fatalf("expected all join rows deleted, got %d tags and %d categories", tagCount, categoryCount)
	}

	if len(store.deleted) != 1 || store.deleted[0] != "cover.png" {
		t.Fatalf("expected cover.png deleted, got %v", store.deleted)
	}
}

func TestProjectManagerDeleteSucceedsWithWarningWhenCleanupFails(t *testing.T) {
	t.Parallel()

	db := setupDatabase(t)
	categoryID, tagIDs := seedTaxonomy(t, db)
	manager := newProjectManager(db, &fakeObjectStore{})

	project, err := manager.Create(validProjectInput([]uuid.UUID{categoryID}, tagIDs))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	failing := newProjectManager(db, &fakeObjectStore{err: errors.New("access denied")})
	warning, err := failing.Delete(context.Background(), project.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if warning == "" {
		t.Fatal("expected a warning when image cleanup fails")
	}

	gone, err := db.ProjectRepo().FindByID(project.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if gone != nil {
		t.Fatal("expected project row deleted despite cleanup failure")
	}
}
