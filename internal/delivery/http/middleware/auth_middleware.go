package middleware

import (
	"errors"
	"strings"

	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const ctxActorKey = "actor"

type AuthMiddleware struct {
	tokens jwt.Service
}

func NewAuthMiddleware(tokens jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Middleware validates the bearer token and attaches the resulting
// Actor to the request. Handlers pass the Actor explicitly into every
// usecase call; there is no ambient current-user state below this point.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(ctxActorKey, user.Actor{ID: claims.UserID, Role: claims.Role})
		return c.Next()
	}
}

// ActorFromCtx returns the authenticated actor attached by Middleware.
func ActorFromCtx(c fiber.Ctx) (user.Actor, bool) {
	actor, ok := c.Locals(ctxActorKey).(user.Actor)
	return actor, ok
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
