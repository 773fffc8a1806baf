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

// ProjectManager sequences project writes. Projects carry explicit join rows
// for both tags and categories, so deletes must clear those tables before
// the project row and updates replace memberships wholesale.
type ProjectManager struct {
	projects          *database.ProjectRepo
	projectTags       *database.ProjectTagRepo
	projectCategories *database.ProjectCategoryRepo
	cleaner           Cleaner
	logger            zerolog.Logger
}

func NewProjectManager(
	projects *database.ProjectRepo,
	projectTags *database.ProjectTagRepo,
	projectCategories *database.ProjectCategoryRepo,
	cleaner Cleaner,
) *ProjectManager {
	logger := log.With().Str("component", "projectManager").Logger()

	return &ProjectManager{
		projects:          projects,
		projectTags:       projectTags,
		projectCategories: projectCategories,
		cleaner:           cleaner,
		logger:            logger,
	}
}

// Create validates the input, derives a unique slug and inserts the project
// together with its tag and category links as a single write.
func (m *ProjectManager) Create(input ProjectInput) (*models.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	slug, err := GenerateUniqueSlug(m.projects, input.Title, uuid.Nil)
	if err != nil {
		return nil, errs.NewDatabaseError("generate slug for", "project", err)
	}

	project := &models.Project{
		Title:       input.Title,
		Slug:        slug,
		Description: input.Description,
		Status:      models.NormalizeProjectStatus(input.Status),
		ImageURL:    input.ImageURL,
		ProjectURL:  input.ProjectURL,
		GithubURL:   input.GithubURL,
		Tags:        tagLinks(input.TagIDs),
		Categories:  categoryLinks(input.CategoryIDs),
	}

	if err := m.projects.Add(project); err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}

	created, err := m.projects.FindByID(project.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find created", "project", err)
	}
	return created, nil
}

// Update replaces the project's tag and category memberships wholesale
// (delete-all-then-recreate, so join-row identity is not preserved), writes
// the row, then performs best-effort cleanup of a superseded image.
func (m *ProjectManager) Update(ctx context.Context, id uuid.UUID, input ProjectInput) (*models.Project, string, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	existing, err := m.projects.FindByID(id)
	if err != nil {
		return nil, "", errs.NewDatabaseError("find", "project", err)
	}
	if existing == nil {
		return nil, "", errs.NewNotFoundError("project not found")
	}
	previousImageURL := existing.ImageURL

	slug, err := GenerateUniqueSlug(m.projects, input.Title, id)
	if err != nil {
		return nil, "", errs.NewDatabaseError("generate slug for", "project", err)
	}

	if err := m.projectTags.DeleteByProjectID(id); err != nil {
		return nil, "", errs.NewDatabaseError("delete tag links for", "project", err)
	}
	if err := m.projectCategories.DeleteByProjectID(id); err != nil {
		return nil, "", errs.NewDatabaseError("delete category links for", "project", err)
	}

	for _, tagID := range input.TagIDs {
		if err := m.projectTags.Add(&models.ProjectTag{ProjectID: id, TagID: tagID}); err != nil {
			return nil, "", errs.NewDatabaseError("create tag link for", "project", err)
		}
	}
	for _, categoryID := range input.CategoryIDs {
		if err := m.projectCategories.Add(&models.ProjectCategory{ProjectID: id, CategoryID: categoryID}); err != nil {
			return nil, "", errs.NewDatabaseError("create category link for", "project", err)
		}
	}

	project := &models.Project{
		ID:          id,
		Title:       input.Title,
		Slug:        slug,
		Description: input.Description,
		Status:      models.NormalizeProjectStatus(input.Status),
		ImageURL:    input.ImageURL,
		ProjectURL:  input.ProjectURL,
		GithubURL:   input.GithubURL,
		CreatedAt:   existing.CreatedAt,
	}

	if err := m.projects.Update(project); err != nil {
		return nil, "", errs.NewDatabaseError("update", "project", err)
	}

	warning := m.cleaner.CleanupReplaced(ctx, previousImageURL, input.ImageURL)

	updated, err := m.projects.FindByID(id)
	if err != nil {
		return nil, warning, errs.NewDatabaseError("find updated", "project", err)
	}
	return updated, warning, nil
}

// Delete removes the project's join rows first to satisfy referential
// constraints, then the project row, then attempts image cleanup. Cleanup
// failure surfaces as a warning on an otherwise-successful delete.
func (m *ProjectManager) Delete(ctx context.Context, id uuid.UUID) (string, error) {
	project, err := m.projects.FindByID(id)
	if err != nil {
		return "", errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return "", errs.NewNotFoundError("project not found")
	}

	if err := m.projectTags.DeleteByProjectID(id); err != nil {
		return "", errs.NewDatabaseError("delete tag links for", "project", err)
	}
	if err := m.projectCategories.DeleteByProjectID(id); err != nil {
		return "", errs.NewDatabaseError("delete category links for", "project", err)
	}
	if err := m.projects.Delete(id); err != nil {
		return "", errs.NewDatabaseError("delete", "project", err)
	}

	warning := m.cleaner.CleanupReplaced(ctx, project.ImageURL, "")
	return warning, nil
}

func tagLinks(ids []uuid.UUID) []models.ProjectTag {
	links := make([]models.ProjectTag, 0, len(ids))
	for _, id := range ids {
		links = append(links, models.ProjectTag{TagID: id})
	}
	return links
}

func categoryLinks(ids []uuid.UUID) []models.ProjectCategory {
	links := make([]models.ProjectCategory, 0, len(ids))
	for _, id := range ids {
		links = append(links, models.ProjectCategory{CategoryID: id})
	}
	return links
}
