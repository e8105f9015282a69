package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"taskpro/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// HashToken returns the sha256 hex digest of a signed token. Only the
// digest is persisted; comparing digests is what makes a superseded token
// stop working even while its signature is still valid.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// AccessTokenMiddleware authenticates the bearer token and loads the
// acting user into the context. The token must verify against the HMAC
// secret and must be the user's single current session token.
func AccessTokenMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(401, gin.H{"message": "Authorization header is missing"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(401, gin.H{"message": "Invalid token format"})
			return
		}
		tokenString := parts[1]

		claims := &model.AccessClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET_KEY")), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"message": "Token is expired or invalid"})
			return
		}

		var user model.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(401, gin.H{"message": "Not authorized"})
				return
			}
			c.AbortWithStatusJSON(500, gin.H{"message": "Database error"})
			return
		}

		// A login replaces the stored hash, a logout clears it. Either way
		// this token no longer matches and the session is over.
		if !user.HasSession() || user.TokenHash != HashToken(tokenString) {
			c.AbortWithStatusJSON(401, gin.H{"message": "Not authorized"})
			return
		}

		c.Set("userId", user.UserID)
		c.Set("user", &user)
		c.Next()
	}
}
