package currency_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/usecase/currency"
	"github.com/sft-api/backend/internal/domain/entity"
	domainerror "github.com/sft-api/backend/internal/domain/error"
	"github.com/sft-api/backend/internal/integration/persistence"
	"github.com/sft-api/backend/internal/integration/persistence/persistencetest"
)

func ptr[T any](v T) *T {
	return &v
}

func currencyCode(err error) domainerror.CurrencyErrorCode {
	var curErr *domainerror.CurrencyError
	if errors.As(err, &curErr) {
		return curErr.Code
	}
	return ""
}

func TestUseCase_Get(t *testing.T) {
	ctx := context.Background()
	uc := currency.NewUseCase(persistence.NewCurrencyRepository(persistencetest.NewDB(t)))
	userID := uuid.New()

	first, err := uc.Get(ctx, currency.GetInput{UserID: userID})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if first.Code != entity.CurrencyGBP {
		t.Errorf("Code = %s, want GBP", first.Code)
	}

	again, err := uc.Get(ctx, currency.GetInput{UserID: userID})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("second Get() created a new preference")
	}

	other, err := uc.Get(ctx, currency.GetInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if other.ID == first.ID {
		t.Errorf("users share a preference")
	}
}

func TestUseCase_Update(t *testing.T) {
	ctx := context.Background()
	uc := currency.NewUseCase(persistence.NewCurrencyRepository(persistencetest.NewDB(t)))
	userID := uuid.New()

	mine, err := uc.Get(ctx, currency.GetInput{UserID: userID})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	theirs, err := uc.Get(ctx, currency.GetInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	tests := []struct {
		name     string
		input    currency.UpdateInput
		wantCode entity.CurrencyCode
		wantErr  domainerror.CurrencyErrorCode
	}{
		{"change to euro", currency.UpdateInput{ID: mine.ID, UserID: userID, Code: ptr("EUR")}, entity.CurrencyEUR, ""},
		{"code is normalised", currency.UpdateInput{ID: mine.ID, UserID: userID, Code: ptr(" jpy ")}, entity.CurrencyJPY, ""},
		{"nil code keeps current", currency.UpdateInput{ID: mine.ID, UserID: userID}, entity.CurrencyJPY, ""},
		{"unsupported code", currency.UpdateInput{ID: mine.ID, UserID: userID, Code: ptr("BTC")}, "", domainerror.ErrCodeInvalidCurrency},
		{"another user's preference", currency.UpdateInput{ID: theirs.ID, UserID: userID, Code: ptr("USD")}, "", domainerror.ErrCodeNotAuthorizedCurrency},
		{"unknown id", currency.UpdateInput{ID: uuid.New(), UserID: userID, Code: ptr("USD")}, "", domainerror.ErrCodeNotAuthorizedCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Update(ctx, tt.input)
			if tt.wantErr != "" {
				if got := currencyCode(err); got != tt.wantErr {
					t.Fatalf("Update() error = %v, want code %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			if out.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", out.Code, tt.wantCode)
			}

			reread, err := uc.Retrieve(ctx, currency.RetrieveInput{ID: mine.ID, UserID: userID})
			if err != nil {
				t.Fatalf("Retrieve() error = %v", err)
			}
			if reread.Code != tt.wantCode {
				t.Errorf("persisted Code = %s, want %s", reread.Code, tt.wantCode)
			}
		})
	}

	t.Run("foreign preference is left untouched", func(t *testing.T) {
		got, err := uc.Get(ctx, currency.GetInput{UserID: theirs.UserID})
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.Code != entity.CurrencyGBP {
			t.Errorf("Code = %s, want GBP", got.Code)
		}
	})
}

func TestUseCase_Retrieve(t *testing.T) {
	ctx := context.Background()
	uc := currency.NewUseCase(persistence.NewCurrencyRepository(persistencetest.NewDB(t)))
	userID := uuid.New()

	mine, err := uc.Get(ctx, currency.GetInput{UserID: userID})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if _, err := uc.Retrieve(ctx, currency.RetrieveInput{ID: mine.ID, UserID: userID}); err != nil {
		t.Errorf("Retrieve() own preference error = %v", err)
	}
	_, err = uc.Retrieve(ctx, currency.RetrieveInput{ID: mine.ID, UserID: uuid.New()})
	if got := currencyCode(err); got != domainerror.ErrCodeNotAuthorizedCurrency {
		t.Errorf("Retrieve() by another user error = %v, want %s", err, domainerror.ErrCodeNotAuthorizedCurrency)
	}
}

func TestCurrencyCode_IsValid(t *testing.T) {
	for _, c := range entity.SupportedCurrencies {
		if !c.IsValid() {
			t.Errorf("%s.IsValid() = false", c)
		}
	}
	for _, c := range []entity.CurrencyCode{"", "gbp", "XYZ", "GBPX"} {
		if c.IsValid() {
			t.Errorf("%q.IsValid() = true", c)
		}
	}
	if len(entity.SupportedCurrencies) != 10 {
		t.Errorf("len(SupportedCurrencies) = %d, want 10", len(entity.SupportedCurrencies))
	}
}
