package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rvieira/portfolio-cms/content"
	"github.com/rvieira/portfolio-cms/database"
	"github.com/rvieira/portfolio-cms/errs"
	"github.com/rvieira/portfolio-cms/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	manager     *content.ProjectManager
	projectRepo *database.ProjectRepo
}

func newProjectHandler(manager *content.ProjectManager, projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		manager:     manager,
		projectRepo: projectRepo,
	}
}

// ProjectPage is one page of projects
type ProjectPage struct {
	Projects   []*models.Project `json:"projects"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int64             `json:"totalPages"`
}

// listProjects retrieves a page of projects with their tag and category links
// @Summary List projects
// @Description Retrieves a page of projects with resolved tags and categories
// @Tags Projects
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} ProjectPage "Page of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, offset := pageParams(r)

		projects, total, err := h.projectRepo.FindPage(offset, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectPage{
			Projects:   projects,
			Total:      total,
			Page:       page,
			TotalPages: totalPages(total, limit),
		})
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Description Retrieves a project by ID with its tags and categories
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Project details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching project"
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// getProjectBySlug retrieves a project by its public slug
// @Summary Get project by slug
// @Description Retrieves a project by its URL slug, for public rendering
// @Tags Projects
// @Accept json
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} models.Project "Project details"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching project"
// @Router /projects/slug/{slug} [get]
func (h projectHandler) getProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.projectRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Validates the payload, derives a unique slug from the title, and creates the project with its tag and category links
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body content.ProjectInput true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		input, ok := h.decodeInput(w, r)
		if !ok {
			return
		}

		project, err := h.manager.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject updates an existing project
// @Summary Update project
// @Description Full-replacement update; tag/category memberships are replaced wholesale and a superseded image is cleaned up best-effort
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body content.ProjectInput true "Updated project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		input, ok := h.decodeInput(w, r)
		if !ok {
			return
		}

		project, warning, err := h.manager.Update(r.Context(), projectID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if warning != "" {
			h.logger.Warn().Str("projectID", projectID.String()).Msg(warning)
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Removes the project's tag and category links, deletes the row, then attempts best-effort deletion of its stored image
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} MutationResult "Deletion result with any cleanup warning"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		warning, err := h.manager.Delete(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, MutationResult{
			Success:            true,
			ImageDeleteWarning: warning,
		})
	}
}

func (h projectHandler) decodeInput(w http.ResponseWriter, r *http.Request) (content.ProjectInput, bool) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
		return content.ProjectInput{}, false
	}

	var input content.ProjectInput
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&input); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
		h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
		return content.ProjectInput{}, false
	}
	return input, true
}
