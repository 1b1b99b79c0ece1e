package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

// actor returns the authenticated user id and role placed on ctx by the HTTP
// layer. ok is false for unauthenticated or internal calls.
func actor(ctx context.Context) (userID, role string, ok bool) {
	userID, _ = ctx.Value(domain.KeyUserID).(string)
	role, _ = ctx.Value(domain.KeyUserRole).(string)
	return userID, role, userID != ""
}

// requireOwner fails with Forbidden when ctx carries a user other than ownerID.
// Calls without a user on ctx pass.
func requireOwner(ctx context.Context, ownerID, message string) error {
	if userID, _, ok := actor(ctx); ok && userID != ownerID {
		return apperror.Forbidden(message)
	}
	return nil
}
