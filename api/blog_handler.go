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

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	manager   *content.BlogManager
	blogRepo  *database.BlogRepo
}

func newBlogHandler(manager *content.BlogManager, blogRepo *database.BlogRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		manager:   manager,
		blogRepo:  blogRepo,
	}
}

// BlogPage is one page of blogs plus status tallies for the dashboard
type BlogPage struct {
	Blogs            []*models.Blog `json:"blogs"`
	Total            int64          `json:"total"`
	Page             int            `json:"page"`
	TotalPages       int64          `json:"totalPages"`
	PublishedBlogs   int            `json:"publishedBlogs"`
	UnpublishedBlogs int            `json:"unpublishedBlogs"`
}

// MutationResult reports a successful write alongside any best-effort image
// cleanup warning.
type MutationResult struct {
	Success            bool   `json:"success"`
	ImageDeleteWarning string `json:"imageDeleteWarning,omitempty"`
}

// listBlogs retrieves a page of blogs with their category and tags
// @Summary List blogs
// @Description Retrieves a page of blogs with category, tags, and publish-status tallies
// @Tags Blogs
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} BlogPage "Page of blogs"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blogs"
// @Router /blogs [get]
func (h blogHandler) listBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, offset := pageParams(r)

		blogs, total, err := h.blogRepo.FindPage(offset, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blogs", err))
			return
		}

		// Tallies cover the returned page, matching the dashboard list view
		var published, unpublished int
		for _, blog := range blogs {
			switch blog.Status {
			case models.BlogStatusPublished:
				published++
			case models.BlogStatusUnpublished:
				unpublished++
			}
		}

		h.responder.WriteJSON(w, BlogPage{
			Blogs:            blogs,
			Total:            total,
			Page:             page,
			TotalPages:       totalPages(total, limit),
			PublishedBlogs:   published,
			UnpublishedBlogs: unpublished,
		})
	}
}

// getBlog retrieves a specific blog by ID
// @Summary Get blog
// @Description Retrieves a blog by ID with its category and tags
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Success 200 {object} models.Blog "Blog details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog"
// @Router /blog/{blogID} [get]
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// getBlogBySlug retrieves a blog by its public slug
// @Summary Get blog by slug
// @Description Retrieves a blog by its URL slug, for public rendering
// @Tags Blogs
// @Accept json
// @Produce json
// @Param slug path string true "Blog slug"
// @Success 200 {object} models.Blog "Blog details"
// @Failure 404 {object} ErrorResponse "Not Found - Blog not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog"
// @Router /blogs/slug/{slug} [get]
func (h blogHandler) getBlogBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		blog, err := h.blogRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// createBlog creates a new blog
// @Summary Create blog
// @Description Validates the payload, derives a unique slug from the title, and creates the blog with its tag links
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blog body content.BlogInput true "Blog data"
// @Success 201 {object} models.Blog "Created blog"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating blog"
// @Router /blog [post]
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		input, ok := h.decodeInput(w, r)
		if !ok {
			return
		}

		blog, err := h.manager.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, blog)
	}
}

// updateBlog updates an existing blog
// @Summary Update blog
// @Description Full-replacement update; regenerates the slug from the title and cleans up a superseded image best-effort
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Param blog body content.BlogInput true "Updated blog data"
// @Success 200 {object} models.Blog "Updated blog"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog data"
// @Failure 404 {object} ErrorResponse "Not Found - Blog not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating blog"
// @Router /blog/{blogID} [put]
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		input, ok := h.decodeInput(w, r)
		if !ok {
			return
		}

		blog, warning, err := h.manager.Update(r.Context(), blogID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if warning != "" {
			h.logger.Warn().Str("blogID", blogID.String()).Msg(warning)
		}

		h.responder.WriteJSON(w, blog)
	}
}

// deleteBlog deletes a blog by ID
// @Summary Delete blog
// @Description Deletes the blog row, then attempts best-effort deletion of its stored image
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogID path string true "Blog ID" format(uuid)
// @Success 200 {object} MutationResult "Deletion result with any cleanup warning"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting blog"
// @Router /blog/{blogID} [delete]
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		warning, err := h.manager.Delete(r.Context(), blogID)
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

func (h blogHandler) decodeInput(w http.ResponseWriter, r *http.Request) (content.BlogInput, bool) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
		return content.BlogInput{}, false
	}

	var input content.BlogInput
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&input); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode blog request body")
		h.responder.WriteError(w, errs.NewMalformedPayloadError("blog", err))
		return content.BlogInput{}, false
	}
	return input, true
}
