package middleware

import (
	"strings"

	"kinovzor/internal/api/response"
	"kinovzor/internal/repository"
	"kinovzor/pkg/logger"
	"kinovzor/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextKeyUserID = "currentUserID"
	ContextKeyToken  = "currentToken"
)

// UserFlags are the role flags a gate needs to decide access.
type UserFlags struct {
	IsModerator bool
	IsAdmin     bool
}

// UserFlagsFetcher loads role flags for a user id.
type UserFlagsFetcher func(userID int64) (*UserFlags, error)

// AuthRequired validates the bearer token and rejects tokens that were
// revoked through logout. Blacklist may be nil when Redis is not wired in.
func AuthRequired(blacklist *repository.TokenBlacklistRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "missing authentication token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		if blacklist != nil {
			revoked, err := blacklist.Contains(c.Request.Context(), utils.TokenHash(token))
			if err != nil {
				// Redis being down must not lock everyone out. The token
				// still carries a valid signature.
				logger.Warn("Token blacklist check failed", zap.Error(err))
			} else if revoked {
				response.Unauthorized(c, "token has been revoked")
				c.Abort()
				return
			}
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyToken, token)
		c.Next()
	}
}

// AuthOptional records the caller's identity when a valid, unrevoked token is
// present but lets anonymous requests through. Used on public endpoints that
// show more to moderators.
func AuthOptional(blacklist *repository.TokenBlacklistRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.Next()
			return
		}

		if blacklist != nil {
			revoked, err := blacklist.Contains(c.Request.Context(), utils.TokenHash(token))
			if err == nil && revoked {
				c.Next()
				return
			}
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyToken, token)
		c.Next()
	}
}

// GetCurrentUserID returns the authenticated user id from the context.
func GetCurrentUserID(c *gin.Context) (int64, bool) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := val.(int64)
	return userID, ok
}

// GetCurrentToken returns the raw bearer token from the context.
func GetCurrentToken(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextKeyToken)
	if !exists {
		return "", false
	}
	token, ok := val.(string)
	return token, ok
}

// ModeratorRequired gates moderation endpoints. Admins pass too. Must run
// after AuthRequired.
func ModeratorRequired(fetcher UserFlagsFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		flags, ok := fetchFlags(c, fetcher)
		if !ok {
			return
		}
		if !flags.IsModerator && !flags.IsAdmin {
			response.Forbidden(c, "moderator access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired gates admin endpoints. Must run after AuthRequired.
func AdminRequired(fetcher UserFlagsFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		flags, ok := fetchFlags(c, fetcher)
		if !ok {
			return
		}
		if !flags.IsAdmin {
			response.Forbidden(c, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func fetchFlags(c *gin.Context, fetcher UserFlagsFetcher) (*UserFlags, bool) {
	userID, ok := GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		c.Abort()
		return nil, false
	}

	flags, err := fetcher(userID)
	if err != nil {
		response.Unauthorized(c, "user not found")
		c.Abort()
		return nil, false
	}
	return flags, true
}

// extractToken pulls the bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
