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

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
}

func newTagHandler(tagRepo *database.TagRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
	}
}

// TagWithCount is a tag plus how many blogs reference it
type TagWithCount struct {
	models.Tag
	BlogCount int64 `json:"blogCount"`
}

// TagPage is one page of tags
type TagPage struct {
	Tags       []TagWithCount `json:"tags"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int64          `json:"totalPages"`
}

// listTags retrieves a page of tags with per-tag blog counts
// @Summary List tags
// @Tags Tags
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} TagPage "Page of tags"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching tags"
// @Router /tags [get]
func (h tagHandler) listTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, offset := pageParams(r)

		tags, total, err := h.tagRepo.FindPage(offset, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tags", err))
			return
		}

		withCounts := make([]TagWithCount, 0, len(tags))
		for _, tag := range tags {
			count, err := h.tagRepo.BlogUsageCount(tag.ID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("count blogs for", "tag", err))
				return
			}
			withCounts = append(withCounts, TagWithCount{Tag: *tag, BlogCount: count})
		}

		h.responder.WriteJSON(w, TagPage{
			Tags:       withCounts,
			Total:      total,
			Page:       page,
			TotalPages: totalPages(total, limit),
		})
	}
}

// createTag creates a new tag
// @Summary Create tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param tag body content.TagInput true "Tag data"
// @Success 201 {object} models.Tag "Created tag"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid tag data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating tag"
// @Router /tag [post]
func (h tagHandler) createTag() http.HandlerFunc {
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

		tag := &models.Tag{Name: input.Name, Color: input.Color}
		if err := h.tagRepo.Add(tag); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "tag", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, tag)
	}
}

// updateTag updates an existing tag
// @Summary Update tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param tagID path string true "Tag ID" format(uuid)
// @Param tag body content.TagInput true "Updated tag data"
// @Success 200 {object} models.Tag "Updated tag"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid tag data"
// @Failure 404 {object} ErrorResponse "Not Found - Tag not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating tag"
// @Router /tag/{tagID} [put]
func (h tagHandler) updateTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		tagID, err := uuid.Parse(chi.URLParam(r, "tagID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid tagID"))
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

		existing, err := h.tagRepo.FindByID(tagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tag", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("tag not found"))
			return
		}

		existing.Name = input.Name
		existing.Color = input.Color
		if err := h.tagRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "tag", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteTag deletes a tag by ID
// @Summary Delete tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param tagID path string true "Tag ID" format(uuid)
// @Success 200 {object} MutationResult "Deletion result"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid tagID"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting tag"
// @Router /tag/{tagID} [delete]
func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		tagID, err := uuid.Parse(chi.URLParam(r, "tagID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid tagID"))
			return
		}

		if err := h.tagRepo.Delete(tagID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "tag", err))
			return
		}

		h.responder.WriteJSON(w, MutationResult{Success: true})
	}
}

func (h tagHandler) decodeInput(w http.ResponseWriter, r *http.Request) (content.TagInput, bool) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
		return content.TagInput{}, false
	}

	var input content.TagInput
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&input); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode tag request body")
		h.responder.WriteError(w, errs.NewMalformedPayloadError("tag", err))
		return content.TagInput{}, false
	}
	return input, true
}
