package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rvieira/portfolio-cms/content"
	"github.com/rvieira/portfolio-cms/errs"
)

// maxUploadSize bounds the multipart form held in memory
const maxUploadSize = 10 << 20 // 10MB

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     ObjectStore
	cleaner   content.Cleaner
}

func newUploadHandler(store ObjectStore, cleaner content.Cleaner) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		cleaner:   cleaner,
	}
}

// UploadResult carries the public URL of an uploaded object
type UploadResult struct {
	URL string `json:"url"`
}

// uploadImage stores a multipart file and returns its public URL
// @Summary Upload image
// @Description Stores the uploaded file under a timestamp-prefixed key and returns its public URL
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} UploadResult "Public URL of the stored object"
// @Failure 400 {object} ErrorResponse "Bad Request - No file uploaded"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Upload failed"
// @Router /upload [post]
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart form", err))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		body, err := io.ReadAll(file)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read uploaded file"))
			return
		}

		// Flat keyspace: timestamp prefix keeps names unique per upload
		key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), header.Filename)
		contentType := header.Header.Get("Content-Type")

		url, err := h.store.Put(r.Context(), key, body, contentType)
		if err != nil {
			h.logger.Error().Err(err).Str("key", key).Msg("Failed to upload image")
			h.responder.WriteError(w, errs.NewStorageWriteError(key, err))
			return
		}

		h.responder.WriteJSON(w, UploadResult{URL: url})
	}
}

// deleteImage removes a stored object that is no longer referenced
// @Summary Delete image
// @Description Deletes the object behind the given URL; used when an image is discarded from a form before saving
// @Tags Images
// @Accept json
// @Produce json
// @Param body body object true "JSON object with the image url"
// @Success 200 {object} MutationResult "Deletion result"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing or invalid image URL"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Deletion failed"
// @Router /delete-image [post]
func (h uploadHandler) deleteImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		var payload struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("delete-image", err))
			return
		}

		if err := h.cleaner.Discard(r.Context(), payload.URL); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, MutationResult{Success: true})
	}
}
