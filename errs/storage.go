package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Object Storage Errors
var (
	ErrStorageWrite  = errors.New("storage write failed")
	ErrStorageDelete = errors.New("storage delete failed")
)

// NewStorageWriteError wraps a failed object upload.
func NewStorageWriteError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageWrite,
		Details:    fmt.Sprintf("Failed to store object (key %q)", key),
		Cause:      cause,
	}
}

// NewStorageError wraps a failed object deletion. Only used where storage is
// the primary operation (explicit image discard); cleanup that rides along
// with a row mutation surfaces as a warning instead.
func NewStorageError(operation, key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorageDelete,
		Details:    fmt.Sprintf("Failed to %s (key %q)", operation, key),
		Cause:      cause,
	}
}
