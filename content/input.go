package content

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rvieira/portfolio-cms/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// BlogInput is the full-replacement payload for blog creates and updates.
// Slug is never accepted from clients; it is derived from Title.
type BlogInput struct {
	Title      string      `json:"title" validate:"required,min=5"`
	Excerpt    string      `json:"excerpt" validate:"required,min=20"`
	Content    string      `json:"content" validate:"required,min=50"`
	Status     string      `json:"status" validate:"required,oneof=PUBLISHED UNPUBLISHED"`
	ImageURL   string      `json:"imageUrl" validate:"required"`
	CategoryID uuid.UUID   `json:"categoryId" validate:"required"`
	TagIDs     []uuid.UUID `json:"tagIds" validate:"required,min=1"`
}

func (in BlogInput) Validate() error {
	return toValidationError(validate.Struct(in))
}

// ProjectInput is the full-replacement payload for project creates and
// updates.
type ProjectInput struct {
	Title       string      `json:"title" validate:"required,min=3"`
	Description string      `json:"description" validate:"required,min=20"`
	Status      string      `json:"status" validate:"required,oneof=active completed archived"`
	ImageURL    string      `json:"imageUrl" validate:"required"`
	ProjectURL  string      `json:"projectUrl" validate:"omitempty,url"`
	GithubURL   string      `json:"githubUrl" validate:"omitempty,url"`
	TagIDs      []uuid.UUID `json:"tagIds" validate:"required,min=1"`
	CategoryIDs []uuid.UUID `json:"categoryIds" validate:"required,min=1"`
}

func (in ProjectInput) Validate() error {
	return toValidationError(validate.Struct(in))
}

// CategoryInput is the payload for category creates and updates.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description" validate:"required,min=10"`
}

func (in CategoryInput) Validate() error {
	return toValidationError(validate.Struct(in))
}

// TagInput is the payload for tag creates and updates.
type TagInput struct {
	Name  string `json:"name" validate:"required,min=2"`
	Color string `json:"color" validate:"required,hexcolor"`
}

func (in TagInput) Validate() error {
	return toValidationError(validate.Struct(in))
}

// toValidationError converts the first validator failure into an ApiErr so
// handlers can surface the offending field.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errs.NewInvalidFieldError(fe.Field(), "failed on the '"+fe.Tag()+"' rule")
	}
	return errs.NewBadRequestError("invalid input")
}
