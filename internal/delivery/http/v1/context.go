package v1

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// userContext copies the caller identity set by AuthMiddleware onto the
// request context, where usecases look for it. gin.Context.Value only resolves
// plain string keys, so it cannot be passed through directly.
func userContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	for _, key := range []domain.CtxKey{domain.KeyUserID, domain.KeyUserEmail, domain.KeyUserRole} {
		if v := c.GetString(string(key)); v != "" {
			ctx = context.WithValue(ctx, key, v)
		}
	}
	return ctx
}

// subject returns the authenticated user id, or "" on public routes.
func subject(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

// bindError converts a ShouldBindJSON failure into a 400.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperror.Validation(validation.Message(verrs))
	}
	return apperror.Validation("Invalid request body")
}
