// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sft-api/backend/internal/application/usecase/currency"
	domainerror "github.com/sft-api/backend/internal/domain/error"
	"github.com/sft-api/backend/internal/integration/entrypoint/dto"
)

// CurrencyController handles currency preference endpoints.
type CurrencyController struct {
	currencyUseCase *currency.UseCase
}

// NewCurrencyController creates a new currency controller instance.
func NewCurrencyController(currencyUseCase *currency.UseCase) *CurrencyController {
	return &CurrencyController{
		currencyUseCase: currencyUseCase,
	}
}

// Get handles GET /currency requests.
func (c *CurrencyController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.currencyUseCase.Get(ctx.Request.Context(), currency.GetInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCurrencyResponse(output))
}

// Retrieve handles GET /currency/:id requests.
func (c *CurrencyController) Retrieve(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	output, err := c.currencyUseCase.Retrieve(ctx.Request.Context(), currency.RetrieveInput{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCurrencyResponse(output))
}

// Update handles PATCH /currency/:id requests.
func (c *CurrencyController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCurrencyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCurrencyFields),
		})
		return
	}

	output, err := c.currencyUseCase.Update(ctx.Request.Context(), currency.UpdateInput{
		ID:     id,
		UserID: userID,
		Code:   req.Currency,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCurrencyResponse(output))
}

// Create handles POST /currency requests. Preferences are created on first
// read, so explicit creation is refused.
func (c *CurrencyController) Create(ctx *gin.Context) {
	ctx.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{
		Error: "Currency settings are created automatically",
		Code:  string(domainerror.ErrCodeCurrencyNotCreatable),
	})
}
