// Package currency contains the currency preference use cases.
package currency

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/domain/entity"
	domainerror "github.com/sft-api/backend/internal/domain/error"
)

// Output represents a currency preference in the output.
type Output struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      entity.CurrencyCode
	UpdatedAt time.Time
}

// GetInput identifies the caller whose preference is returned.
type GetInput struct {
	UserID uuid.UUID
}

// RetrieveInput identifies one preference by ID.
type RetrieveInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// UpdateInput represents a partial update. A nil Code leaves it unchanged.
type UpdateInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Code   *string
}

// UseCase reads and changes a user's currency preference. Preferences are
// created implicitly and never deleted.
type UseCase struct {
	currencyRepo adapter.CurrencyRepository
}

// NewUseCase creates a new currency UseCase instance.
func NewUseCase(currencyRepo adapter.CurrencyRepository) *UseCase {
	return &UseCase{
		currencyRepo: currencyRepo,
	}
}

// Get returns the caller's preference, creating the default one on first access.
func (uc *UseCase) Get(ctx context.Context, input GetInput) (*Output, error) {
	pref, err := uc.currencyRepo.GetOrCreate(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency preference: %w", err)
	}
	return toOutput(pref), nil
}

// Retrieve returns the preference with the given ID if the caller owns it.
func (uc *UseCase) Retrieve(ctx context.Context, input RetrieveInput) (*Output, error) {
	pref, err := uc.owned(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}
	return toOutput(pref), nil
}

// Update changes the code of the caller's preference.
func (uc *UseCase) Update(ctx context.Context, input UpdateInput) (*Output, error) {
	var code entity.CurrencyCode
	if input.Code != nil {
		code = entity.CurrencyCode(strings.ToUpper(strings.TrimSpace(*input.Code)))
		if !code.IsValid() {
			return nil, domainerror.NewCurrencyError(
				domainerror.ErrCodeInvalidCurrency,
				fmt.Sprintf("%q is not a supported currency", *input.Code),
				nil,
			)
		}
	}

	pref, err := uc.owned(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}
	if input.Code == nil || code == pref.Code {
		return toOutput(pref), nil
	}

	if err := uc.currencyRepo.UpdateCode(ctx, pref.ID, code); err != nil {
		return nil, fmt.Errorf("failed to update currency preference: %w", err)
	}
	pref.Code = code
	pref.UpdatedAt = time.Now().UTC()
	return toOutput(pref), nil
}

// owned loads a preference. Missing and foreign preferences are both
// reported as forbidden.
func (uc *UseCase) owned(ctx context.Context, id, userID uuid.UUID) (*entity.CurrencyPreference, error) {
	pref, err := uc.currencyRepo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, domainerror.ErrCurrencyNotFound) {
		return nil, fmt.Errorf("failed to find currency preference: %w", err)
	}
	if pref == nil || pref.UserID != userID {
		return nil, domainerror.NewCurrencyError(
			domainerror.ErrCodeNotAuthorizedCurrency,
			"not found or not your currency setting",
			domainerror.ErrNotAuthorizedCurrency,
		)
	}
	return pref, nil
}

func toOutput(c *entity.CurrencyPreference) *Output {
	return &Output{
		ID:        c.ID,
		UserID:    c.UserID,
		Code:      c.Code,
		UpdatedAt: c.UpdatedAt,
	}
}
