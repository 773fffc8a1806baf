package api

import (
	"context"
	"errors"
)

type keyType string

const (
	userEmailKey keyType = "userEmail"
)

// ctxWithUserEmail adds the authenticated user's email to the context
func ctxWithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// ctxUserEmail retrieves the authenticated user's email from the context
func ctxUserEmail(ctx context.Context) (string, error) {
	value := ctx.Value(userEmailKey)
	if value == nil {
		return "", errors.New("user email not found in context")
	}
	email, ok := value.(string)
	if !ok {
		return "", errors.New("user email is not of type `string`")
	}
	return email, nil
}
