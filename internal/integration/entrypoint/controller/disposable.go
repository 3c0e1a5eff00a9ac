// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sft-api/backend/internal/application/usecase/disposable"
	domainerror "github.com/sft-api/backend/internal/domain/error"
	"github.com/sft-api/backend/internal/integration/entrypoint/dto"
)

// DisposableController handles disposable budget and spending endpoints.
type DisposableController struct {
	getBudgetUseCase    *disposable.GetBudgetUseCase
	updateBudgetUseCase *disposable.UpdateBudgetUseCase
	spendingUseCase     *disposable.SpendingUseCase
	clock
}

// NewDisposableController creates a new disposable controller instance.
func NewDisposableController(
	getBudgetUseCase *disposable.GetBudgetUseCase,
	updateBudgetUseCase *disposable.UpdateBudgetUseCase,
	spendingUseCase *disposable.SpendingUseCase,
) *DisposableController {
	return &DisposableController{
		getBudgetUseCase:    getBudgetUseCase,
		updateBudgetUseCase: updateBudgetUseCase,
		spendingUseCase:     spendingUseCase,
		clock:               systemClock(),
	}
}

// GetBudget handles GET /disposable-budget requests.
func (c *DisposableController) GetBudget(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	month, _ := monthParam(ctx, c.now)
	output, err := c.getBudgetUseCase.Execute(ctx.Request.Context(), disposable.GetBudgetInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// UpdateBudget handles PATCH /disposable-budget/:id requests.
func (c *DisposableController) UpdateBudget(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDisposableFields),
		})
		return
	}

	output, err := c.updateBudgetUseCase.Execute(ctx.Request.Context(), disposable.UpdateBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
		Amount:   *req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// ListSpending handles GET /disposable-spending requests.
func (c *DisposableController) ListSpending(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	month, label := monthParam(ctx, c.now)
	output, err := c.spendingUseCase.List(ctx.Request.Context(), disposable.ListSpendingInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSpendingListResponse(label, output))
}

// CreateSpending handles POST /disposable-spending requests.
func (c *DisposableController) CreateSpending(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateSpendingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDisposableFields),
		})
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvalidDisposableDate),
		})
		return
	}

	output, err := c.spendingUseCase.Create(ctx.Request.Context(), disposable.CreateSpendingInput{
		UserID: userID,
		Title:  req.Title,
		Amount: *req.Amount,
		Date:   date,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSpendingResponse(output))
}

// UpdateSpending handles PATCH /disposable-spending/:id requests.
func (c *DisposableController) UpdateSpending(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	spendingID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSpendingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDisposableFields),
		})
		return
	}

	input := disposable.UpdateSpendingInput{
		SpendingID: spendingID,
		UserID:     userID,
		Title:      req.Title,
		Amount:     req.Amount,
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
				Code:  string(domainerror.ErrCodeInvalidDisposableDate),
			})
			return
		}
		input.Date = &date
	}

	output, err := c.spendingUseCase.Update(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSpendingResponse(output))
}

// DeleteSpending handles DELETE /disposable-spending/:id requests.
func (c *DisposableController) DeleteSpending(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	spendingID, ok := pathID(ctx)
	if !ok {
		return
	}

	err := c.spendingUseCase.Delete(ctx.Request.Context(), disposable.DeleteSpendingInput{
		SpendingID: spendingID,
		UserID:     userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
