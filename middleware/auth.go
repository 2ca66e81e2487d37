package middleware

import (
	"net/http"
	"strings"

	tutorRepo "tutorhq/database/repository/tutor"
	"tutorhq/utils"

	"github.com/gin-gonic/gin"
)

// TutorAuthMiddleware authenticates dashboard requests. The token hash is
// checked against the auth cache first, falling back to the account record
// when the cache entry has expired.
func TutorAuthMiddleware(tutors tutorRepo.TutorRepository) gin.HandlerFunc {
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

		tutorID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		storedHash := utils.GetCachedAuthToken(tutorID)
		if storedHash == "" {
			rec, err := tutors.GetByID(tutorID)
			if err != nil || rec == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or tutor not found"})
				return
			}
			storedHash = rec.TokenHash
		}
		if storedHash == "" || storedHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
			return
		}

		c.Set("tutorID", tutorID)
		c.Next()
	}
}
