// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sft-api/backend/internal/application/usecase/entry"
	"github.com/sft-api/backend/internal/domain/entity"
	domainerror "github.com/sft-api/backend/internal/domain/error"
	"github.com/sft-api/backend/internal/integration/entrypoint/dto"
)

// EntryController handles income or expenditure endpoints. One instance
// serves one entry kind.
type EntryController struct {
	kind          entity.EntryKind
	listUseCase   *entry.ListEntriesUseCase
	createUseCase *entry.CreateEntryUseCase
	updateUseCase *entry.UpdateEntryUseCase
	deleteUseCase *entry.DeleteEntryUseCase
	clock
}

// NewEntryController creates a new entry controller instance for kind.
func NewEntryController(
	kind entity.EntryKind,
	listUseCase *entry.ListEntriesUseCase,
	createUseCase *entry.CreateEntryUseCase,
	updateUseCase *entry.UpdateEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
) *EntryController {
	return &EntryController{
		kind:          kind,
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		clock:         systemClock(),
	}
}

// List handles GET requests for a month of entries.
func (c *EntryController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	month, label := monthParam(ctx, c.now)
	output, err := c.listUseCase.Execute(ctx.Request.Context(), entry.ListEntriesInput{
		UserID: userID,
		Kind:   c.kind,
		Month:  month,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(label, output))
}

// Create handles POST requests.
func (c *EntryController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvalidEntryDate),
		})
		return
	}

	input := entry.CreateEntryInput{
		UserID:   userID,
		Kind:     c.kind,
		Title:    req.Title,
		Amount:   *req.Amount,
		Date:     date,
		Repeated: entity.RepeatFrequency(req.Repeated),
	}
	if req.Type != nil {
		t := entity.ExpenditureType(*req.Type)
		input.Type = &t
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateEntryResponse{
		EntryResponse: dto.ToEntryResponse(output.Entry),
		Generated:     output.Generated,
	})
}

// Update handles PATCH requests.
func (c *EntryController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	entryID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	input := entry.UpdateEntryInput{
		EntryID: entryID,
		UserID:  userID,
		Kind:    c.kind,
		Title:   req.Title,
		Amount:  req.Amount,
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
				Code:  string(domainerror.ErrCodeInvalidEntryDate),
			})
			return
		}
		input.Date = &date
	}
	if req.Repeated != nil {
		r := entity.RepeatFrequency(*req.Repeated)
		input.Repeated = &r
	}
	if req.Type != nil {
		t := entity.ExpenditureType(*req.Type)
		input.Type = &t
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE requests. Deleting a series member also removes
// every later occurrence.
func (c *EntryController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	entryID, ok := pathID(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), entry.DeleteEntryInput{
		EntryID: entryID,
		UserID:  userID,
		Kind:    c.kind,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
