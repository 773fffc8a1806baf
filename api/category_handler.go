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

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
	blogRepo     *database.BlogRepo
}

func newCategoryHandler(categoryRepo *database.CategoryRepo, blogRepo *database.BlogRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
		blogRepo:     blogRepo,
	}
}

// CategoryWithCount is a category plus how many blogs reference it
type CategoryWithCount struct {
	models.Category
	BlogCount int64 `json:"blogCount"`
}

// CategoryPage is one page of categories
type CategoryPage struct {
	Categories []CategoryWithCount `json:"categories"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	TotalPages int64               `json:"totalPages"`
}

// listCategories retrieves a page of categories with per-category blog counts
// @Summary List categories
// @Tags Categories
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} CategoryPage "Page of categories"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching categories"
// @Router /categories [get]
func (h categoryHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, offset := pageParams(r)

		categories, total, err := h.categoryRepo.FindPage(offset, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}

		withCounts := make([]CategoryWithCount, 0, len(categories))
		for _, category := range categories {
			count, err := h.blogRepo.CountByCategory(category.ID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("count blogs for", "category", err))
				return
			}
			withCounts = append(withCounts, CategoryWithCount{Category: *category, BlogCount: count})
		}

		h.responder.WriteJSON(w, CategoryPage{
			Categories: withCounts,
			Total:      total,
			Page:       page,
			TotalPages: totalPages(total, limit),
		})
	}
}

// createCategory creates a new category
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body content.CategoryInput true "Category data"
// @Success 201 {object} models.Category "Created category"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid category data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating category"
// @Router /category [post]
func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		input, ok := h.decodeInput(w, r)
		if !ok {
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category := &models.Category{Name: input.Name, Description: input.Description}
		if err := h.categoryRepo.Add(category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "category", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, category)
	}
}

// updateCategory updates an existing category
// @Summary Update category
// @Tags Categories
// @Accept json
// @Produce json
// @Param categoryID path string true "Category ID" format(uuid)
// @Param category body content.CategoryInput true "Updated category data"
// @Success 200 {object} models.Category "Updated category"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid category data"
// @Failure 404 {object} ErrorResponse "Not Found - Category not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating category"
// @Router /category/{categoryID} [put]
func (h categoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		input, ok := h.decodeInput(w, r)
		if !ok {
			return
		}
		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "category", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}

		existing.Name = input.Name
		existing.Description = input.Description
		if err := h.categoryRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "category", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteCategory deletes a category by ID
// @Summary Delete category
// @Tags Categories
// @Accept json
// @Produce json
// @Param categoryID path string true "Category ID" format(uuid)
// @Success 200 {object} MutationResult "Deletion result"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid categoryID"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting category"
// @Router /category/{categoryID} [delete]
func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		if err := h.categoryRepo.Delete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "category", err))
			return
		}

		h.responder.WriteJSON(w, MutationResult{Success: true})
	}
}

func (h categoryHandler) decodeInput(w http.ResponseWriter, r *http.Request) (content.CategoryInput, bool) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
		return content.CategoryInput{}, false
	}

	var input content.CategoryInput
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&input); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode category request body")
		h.responder.WriteError(w, errs.NewMalformedPayloadError("category", err))
		return content.CategoryInput{}, false
	}
	return input, true
}
