// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/usecase/currency"
	"github.com/sft-api/backend/internal/application/usecase/summary"
	"github.com/sft-api/backend/internal/domain/entity"
	"github.com/sft-api/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles summary endpoints.
type SummaryController struct {
	monthlyUseCase  *summary.GetMonthlySummaryUseCase
	weeklyUseCase   *summary.GetWeeklySummaryUseCase
	calendarUseCase *summary.GetCalendarSummaryUseCase
	currencyUseCase *currency.UseCase
	clock
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	monthlyUseCase *summary.GetMonthlySummaryUseCase,
	weeklyUseCase *summary.GetWeeklySummaryUseCase,
	calendarUseCase *summary.GetCalendarSummaryUseCase,
	currencyUseCase *currency.UseCase,
) *SummaryController {
	return &SummaryController{
		monthlyUseCase:  monthlyUseCase,
		weeklyUseCase:   weeklyUseCase,
		calendarUseCase: calendarUseCase,
		currencyUseCase: currencyUseCase,
		clock:           systemClock(),
	}
}

// Monthly handles GET /summaries/monthly requests.
func (c *SummaryController) Monthly(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	month, label := monthParam(ctx, c.now)
	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), summary.GetMonthlySummaryInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	code, err := c.preferredCurrency(ctx, userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(label, code, output))
}

// Weekly handles GET /summaries/weekly requests.
func (c *SummaryController) Weekly(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	month, label := monthParam(ctx, c.now)
	weeks, err := c.weeklyUseCase.Execute(ctx.Request.Context(), summary.GetWeeklySummaryInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	code, err := c.preferredCurrency(ctx, userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeeklySummaryListResponse(label, code, weeks))
}

// Calendar handles GET /summaries/calendar requests.
func (c *SummaryController) Calendar(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	month, _ := monthParam(ctx, c.now)
	days, err := c.calendarUseCase.Execute(ctx.Request.Context(), summary.GetCalendarSummaryInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(days))
}

func (c *SummaryController) preferredCurrency(ctx *gin.Context, userID uuid.UUID) (entity.CurrencyCode, error) {
	pref, err := c.currencyUseCase.Get(ctx.Request.Context(), currency.GetInput{UserID: userID})
	if err != nil {
		return "", err
	}
	return pref.Code, nil
}
