// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/sft-api/backend/internal/domain/error"
	"github.com/sft-api/backend/internal/domain/valueobject"
	"github.com/sft-api/backend/internal/integration/entrypoint/dto"
	"github.com/sft-api/backend/internal/integration/entrypoint/middleware"
)

// handleError maps domain errors to HTTP responses. Anything unrecognised is
// logged and reported as a 500.
func handleError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		ctx.JSON(statusForEntryCode(entryErr.Code), dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	var disErr *domainerror.DisposableError
	if errors.As(err, &disErr) {
		ctx.JSON(statusForDisposableCode(disErr.Code), dto.ErrorResponse{
			Error: disErr.Message,
			Code:  string(disErr.Code),
		})
		return
	}

	var curErr *domainerror.CurrencyError
	if errors.As(err, &curErr) {
		ctx.JSON(statusForCurrencyCode(curErr.Code), dto.ErrorResponse{
			Error: curErr.Message,
			Code:  string(curErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrUnknownEntryKind) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slog.ErrorContext(ctx.Request.Context(), "Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForEntryCode maps entry error codes to HTTP status codes.
func statusForEntryCode(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedEntry:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidEntryTitle,
		domainerror.ErrCodeInvalidEntryAmount,
		domainerror.ErrCodeInvalidEntryDate,
		domainerror.ErrCodeInvalidRepeatFrequency,
		domainerror.ErrCodeInvalidExpenditureType,
		domainerror.ErrCodeMissingEntryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForDisposableCode maps disposable error codes to HTTP status codes.
func statusForDisposableCode(code domainerror.DisposableErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound,
		domainerror.ErrCodeSpendingNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedDisposable:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidDisposableTitle,
		domainerror.ErrCodeInvalidDisposableAmount,
		domainerror.ErrCodeInvalidDisposableDate,
		domainerror.ErrCodeMissingDisposableFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForCurrencyCode maps currency error codes to HTTP status codes.
func statusForCurrencyCode(code domainerror.CurrencyErrorCode) int {
	switch code {
	case domainerror.ErrCodeNotAuthorizedCurrency:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidCurrency,
		domainerror.ErrCodeMissingCurrencyFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeCurrencyNotCreatable:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// requireUser returns the authenticated user's ID or writes a 401.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the :id path parameter or writes a 400.
func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// monthParam resolves ?month=YYYY-MM, falling back to the current month.
func monthParam(ctx *gin.Context, now func() time.Time) (valueobject.MonthRange, string) {
	month := valueobject.ResolveMonth(ctx.Query("month"), now())
	return month, month.Start.Format(valueobject.MonthParamLayout)
}
