package content

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rvieira/portfolio-cms/database"
	"github.com/rvieira/portfolio-cms/errs"
	"github.com/rvieira/portfolio-cms/models"
)

// BlogManager sequences blog writes: validation, slug derivation, the row
// mutation, tag links, and best-effort cleanup of superseded images.
type BlogManager struct {
	blogs   *database.BlogRepo
	cleaner Cleaner
	logger  zerolog.Logger
}

func NewBlogManager(blogs *database.BlogRepo, cleaner Cleaner) *BlogManager {
	logger := log.With().Str("component", "blogManager").Logger()

	return &BlogManager{
		blogs:   blogs,
		cleaner: cleaner,
		logger:  logger,
	}
}

// Create validates the input, derives a unique slug and inserts the blog
// with its tag links as a single write. The persisted entity is returned
// with relations resolved.
func (m *BlogManager) Create(input BlogInput) (*models.Blog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	slug, err := GenerateUniqueSlug(m.blogs, input.Title, uuid.Nil)
	if err != nil {
		return nil, errs.NewDatabaseError("generate slug for", "blog", err)
	}

	blog := &models.Blog{
		Title:      input.Title,
		Slug:       slug,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		Status:     models.NormalizeBlogStatus(input.Status),
		ImageURL:   input.ImageURL,
		CategoryID: input.CategoryID,
		Tags:       tagRefs(input.TagIDs),
	}

	if err := m.blogs.Add(blog); err != nil {
		return nil, errs.NewDatabaseError("create", "blog", err)
	}

	created, err := m.blogs.FindByID(blog.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find created", "blog", err)
	}
	return created, nil
}

// Update replaces the blog row and its tag links, regenerating the slug from
// the new title while excluding the blog's own id from the collision check.
// When the image URL changed, the superseded object is deleted after the row
// write; that cleanup never fails the update and is reported as a warning.
func (m *BlogManager) Update(ctx context.Context, id uuid.UUID, input BlogInput) (*models.Blog, string, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	existing, err := m.blogs.FindByID(id)
	if err != nil {
		return nil, "", errs.NewDatabaseError("find", "blog", err)
	}
	if existing == nil {
		return nil, "", errs.NewNotFoundError("blog not found")
	}
	previousImageURL := existing.ImageURL

	slug, err := GenerateUniqueSlug(m.blogs, input.Title, id)
	if err != nil {
		return nil, "", errs.NewDatabaseError("generate slug for", "blog", err)
	}

	blog := &models.Blog{
		ID:         id,
		Title:      input.Title,
		Slug:       slug,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		Status:     models.NormalizeBlogStatus(input.Status),
		ImageURL:   input.ImageURL,
		CategoryID: input.CategoryID,
		CreatedAt:  existing.CreatedAt,
	}

	if err := m.blogs.Update(blog); err != nil {
		return nil, "", errs.NewDatabaseError("update", "blog", err)
	}

	if err := m.blogs.ReplaceTags(blog, tagRefs(input.TagIDs)); err != nil {
		return nil, "", errs.NewDatabaseError("replace tags for", "blog", err)
	}

	warning := m.cleaner.CleanupReplaced(ctx, previousImageURL, input.ImageURL)

	updated, err := m.blogs.FindByID(id)
	if err != nil {
		return nil, warning, errs.NewDatabaseError("find updated", "blog", err)
	}
	return updated, warning, nil
}

// Delete removes the blog row, then attempts to delete its stored image.
// Image cleanup failure is reported as a warning and never reverses the
// already-completed row deletion.
func (m *BlogManager) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	blog, err := m.blogs.FindByID(id)
	if err != nil {
		return "", errs.NewDatabaseError("find", "blog", err)
	}
	if blog == nil {
		return "", errs.NewNotFoundError("blog not found")
	}

	if err := m.blogs.Delete(id); err != nil {
		return "", errs.NewDatabaseError("delete", "blog", err)
	}

	warning := m.cleaner.CleanupReplaced(ctx, blog.ImageURL, "")
	return warning, nil
}

func tagRefs(ids []uuid.UUID) []models.Tag {
	tags := make([]models.Tag, 0, len(ids))
	for _, id := range ids {
		tags = append(tags, models.Tag{ID: id})
	}
	return tags
}
