package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "taily/database/repository/user"
	"taily/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware validates the bearer token against the cached session
// hash, falling back to the user record when the cache misses. On success
// the user's ID, role, and provider link are set on the context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		// Fast path: the cached session hash for this user.
		client := utils.GetAuthCacheClient()
		cachedHash, err := client.Get(ctx, utils.AuthCachePrefix+userID).Result()
		if err == nil && cachedHash == computedHash {
			u, err := users.GetByID(userID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
				return
			}
			setIdentity(c, u.ID, u.Role, u.ProviderID)
			return
		}
		if err != nil && err != redis.Nil {
			utils.GetLogger().Warn("Auth cache unavailable, falling back to database")
		}

		// Slow path: match the stored token hash, then refresh the cache.
		u, err := users.GetByTokenHash(computedHash)
		if err != nil || u == nil || u.ID != userID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		if err := client.Set(ctx, utils.AuthCachePrefix+userID, computedHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to refresh auth cache entry")
		}

		setIdentity(c, u.ID, u.Role, u.ProviderID)
	}
}

func setIdentity(c *gin.Context, userID, role, providerID string) {
	c.Set("userID", userID)
	c.Set("role", role)
	if providerID != "" {
		c.Set("providerID", providerID)
	}
	c.Next()
}
