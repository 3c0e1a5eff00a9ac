// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sft-api/backend/internal/application/adapter"
	domainerror "github.com/sft-api/backend/internal/domain/error"
	"github.com/sft-api/backend/internal/integration/entrypoint/dto"
)

const principalKey = "principal"

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID uuid.UUID
	Email  string
}

// authFailure is a rejected Authorization header.
type authFailure struct {
	code    domainerror.AuthErrorCode
	message string
}

// AuthMiddleware resolves bearer tokens into a Principal.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate rejects requests without a valid bearer token with 401.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, failure := bearerToken(c.GetHeader("Authorization"))
		if failure != nil {
			abortUnauthorized(c, *failure)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, tokenFailure(err))
			return
		}

		c.Set(principalKey, Principal{UserID: claims.UserID, Email: claims.Email})
		c.Next()
	}
}

func bearerToken(header string) (string, *authFailure) {
	if header == "" {
		return "", &authFailure{domainerror.ErrCodeMissingToken, "Authorization header is required"}
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", &authFailure{domainerror.ErrCodeInvalidToken, "Invalid authorization header format"}
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", &authFailure{domainerror.ErrCodeMissingToken, "Token is required"}
	}
	return token, nil
}

func tokenFailure(err error) authFailure {
	if errors.Is(err, domainerror.ErrExpiredToken) {
		return authFailure{domainerror.ErrCodeExpiredToken, "Token has expired"}
	}
	return authFailure{domainerror.ErrCodeInvalidToken, "Invalid token"}
}

func abortUnauthorized(c *gin.Context, failure authFailure) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: failure.message,
		Code:  string(failure.code),
	})
}

// PrincipalFromContext returns the caller set by Authenticate.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	principal, ok := PrincipalFromContext(c)
	return principal.UserID, ok
}

// GetUserEmailFromContext extracts the user email from the Gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	principal, ok := PrincipalFromContext(c)
	return principal.Email, ok
}
