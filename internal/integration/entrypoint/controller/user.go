// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sft-api/backend/internal/application/usecase/user"
	"github.com/sft-api/backend/internal/integration/entrypoint/dto"
	"github.com/sft-api/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user profile endpoints.
type UserController struct {
	getCurrentUserUseCase *user.GetCurrentUserUseCase
	clock
}

// NewUserController creates a new user controller instance.
func NewUserController(getCurrentUserUseCase *user.GetCurrentUserUseCase) *UserController {
	return &UserController{
		getCurrentUserUseCase: getCurrentUserUseCase,
		clock:                 systemClock(),
	}
}

// Me handles GET /users/me requests. The call also triggers the monthly
// maintenance of the user's recurring entries.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	email, _ := middleware.GetUserEmailFromContext(ctx)

	output, err := c.getCurrentUserUseCase.Execute(ctx.Request.Context(), user.GetCurrentUserInput{
		UserID: userID,
		Email:  email,
		Now:    c.now().UTC(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output))
}
