// Package user contains user profile use cases.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/application/usecase/recurrence"
)

// GetCurrentUserInput represents the input for fetching the authenticated user.
type GetCurrentUserInput struct {
	UserID uuid.UUID
	Email  string
	Now    time.Time
}

// GetCurrentUserOutput represents the authenticated user's profile.
type GetCurrentUserOutput struct {
	UserID          uuid.UUID
	Email           string
	LastRepeatCheck *time.Time
	CreatedAt       time.Time
}

// GetCurrentUserUseCase returns the caller's profile. Fetching the profile is
// the trigger for the monthly maintenance pass.
type GetCurrentUserUseCase struct {
	profileRepo  adapter.ProfileRepository
	monthlyCheck *recurrence.MonthlyCheckUseCase
}

// NewGetCurrentUserUseCase creates a new GetCurrentUserUseCase instance.
func NewGetCurrentUserUseCase(
	profileRepo adapter.ProfileRepository,
	monthlyCheck *recurrence.MonthlyCheckUseCase,
) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		profileRepo:  profileRepo,
		monthlyCheck: monthlyCheck,
	}
}

// Execute runs maintenance and returns the profile. Maintenance failures are
// logged and never reach the caller.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, input GetCurrentUserInput) (*GetCurrentUserOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	if _, err := uc.monthlyCheck.Execute(ctx, recurrence.MonthlyCheckInput{UserID: input.UserID, Now: now}); err != nil {
		slog.WarnContext(ctx, "Monthly maintenance skipped",
			"user_id", input.UserID,
			"error", err,
		)
	}

	profile, err := uc.profileRepo.GetOrCreate(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &GetCurrentUserOutput{
		UserID:          profile.UserID,
		Email:           input.Email,
		LastRepeatCheck: profile.LastRepeatCheck,
		CreatedAt:       profile.CreatedAt,
	}, nil
}
