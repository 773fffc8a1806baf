package api

import "context"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	blogHandler      blogHandler
	projectHandler   projectHandler
	categoryHandler  categoryHandler
	tagHandler       tagHandler
	uploadHandler    uploadHandler
	dashboardHandler dashboardHandler
	accountHandler   accountHandler
}

// ObjectStore is the object-storage surface the API needs: uploads for the
// dashboard image picker, deletes for discard/cleanup, and the bucket name
// for key extraction.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	Bucket() string
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}
