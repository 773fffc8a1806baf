package content

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rvieira/portfolio-cms/errs"
)

// ObjectStore is the slice of object storage the coordinators need.
type ObjectStore interface {
	Delete(ctx context.Context, key string) error
}

// ObjectKeyFromURL derives the storage key for an object URL. It tries, in
// order: the substring after "/{bucket}/", the URL path when the host starts
// with "{bucket}.s3", and finally the last path segment. Returns "" when no
// key can be derived.
func ObjectKeyFromURL(bucket, rawURL string) string {
	if parts := strings.SplitN(rawURL, "/"+bucket+"/", 2); len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}
	if u, err := url.Parse(rawURL); err == nil && strings.HasPrefix(u.Host, bucket+".s3") {
		return strings.TrimPrefix(u.Path, "/")
	}
	if idx := strings.LastIndex(rawURL, "/"); idx >= 0 && idx+1 < len(rawURL) {
		return rawURL[idx+1:]
	}
	return ""
}

// Cleaner removes stored objects whose referencing entity was deleted or had
// its image replaced.
type Cleaner struct {
	store  ObjectStore
	bucket string
	logger zerolog.Logger
}

func NewCleaner(store ObjectStore, bucket string) Cleaner {
	logger := log.With().Str("component", "imageCleaner").Logger()

	return Cleaner{
		store:  store,
		bucket: bucket,
		logger: logger,
	}
}

// CleanupReplaced deletes the object behind oldURL when it is non-empty and
// differs from newURL. Best-effort: failures are logged and returned as a
// warning string (empty on success) so the caller's primary operation is
// never failed by cleanup.
func (c Cleaner) CleanupReplaced(ctx context.Context, oldURL, newURL string) string {
	if oldURL == "" || oldURL == newURL {
		return ""
	}

	key := ObjectKeyFromURL(c.bucket, oldURL)
	if key == "" {
		c.logger.Warn().Str("imageUrl", oldURL).Msg("Could not determine storage key for image deletion")
		return "could not determine storage key for image deletion"
	}

	if err := c.store.Delete(ctx, key); err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("Failed to delete image from storage")
		return fmt.Sprintf("failed to delete image from storage: %v", err)
	}
	return ""
}

// Discard deletes the object behind rawURL, for images removed from a form
// before the entity was ever saved. Unlike CleanupReplaced it reports its
// own outcome.
func (c Cleaner) Discard(ctx context.Context, rawURL string) error {
	if rawURL == "" {
		return errs.NewMissingRequiredFieldError("url")
	}

	key := ObjectKeyFromURL(c.bucket, rawURL)
	if key == "" {
		return errs.NewInvalidFieldError("url", "could not determine storage key")
	}

	if err := c.store.Delete(ctx, key); err != nil {
		return errs.NewStorageError("delete image", key, err)
	}
	return nil
}
