package auth

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"taskpro/dto"
	"taskpro/middleware"
	"taskpro/model"
	"taskpro/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func AuthController(router *gin.Engine, db *gorm.DB, rt services.Realtime) {
	routes := router.Group("/api/users")
	{
		routes.POST("/register", func(c *gin.Context) {
			Register(c, db)
		})
		routes.POST("/login", func(c *gin.Context) {
			Login(c, db, rt)
		})
		routes.POST("/logout", middleware.AccessTokenMiddleware(db), func(c *gin.Context) {
			Logout(c, db, rt)
		})
		routes.GET("/current", middleware.AccessTokenMiddleware(db), func(c *gin.Context) {
			Current(c)
		})
	}
}

// CreateAccessToken mints the session token for a user. The jti keeps two
// logins in the same second from producing identical tokens, which would
// defeat the supersede-on-login check.
func CreateAccessToken(userID uint) (string, error) {
	hmacSampleSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	claims := &model.AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "taskpro",
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(hmacSampleSecret)
}

func Register(c *gin.Context, db *gorm.DB) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}
	email := strings.ToLower(request.Email)

	var existing model.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		c.JSON(409, gin.H{"message": "Email in use"})
		return
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		c.JSON(500, gin.H{"message": "Database error"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to hash password"})
		return
	}

	user := model.User{
		Name:           request.Name,
		Email:          email,
		HashedPassword: string(hashedPassword),
		Theme:          model.ThemeLight,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(409, gin.H{"message": "Email in use"})
			return
		}
		c.JSON(500, gin.H{"message": "Failed to create user"})
		return
	}

	c.JSON(201, gin.H{
		"user": gin.H{
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func Login(c *gin.Context, db *gorm.DB, rt services.Realtime) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}

	// Bad email and bad password are indistinguishable on purpose.
	var user model.User
	result := db.Where("email = ?", strings.ToLower(request.Email)).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(401, gin.H{"message": "Email or password is wrong"})
			return
		}
		c.JSON(500, gin.H{"message": "Database error"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password)); err != nil {
		c.JSON(401, gin.H{"message": "Email or password is wrong"})
		return
	}

	token, err := CreateAccessToken(user.UserID)
	if err != nil {
		c.JSON(500, gin.H{"message": "Failed to create token"})
		return
	}

	// Overwrites whatever session was active before. One token at a time.
	if err := db.Model(&user).Update("token_hash", middleware.HashToken(token)).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to store session"})
		return
	}

	if err := rt.SyncSession(c.Request.Context(), &user, true); err != nil {
		log.Printf("session mirror: %v", err)
	}

	c.JSON(200, gin.H{
		"token": token,
		"user": gin.H{
			"avatarURL": user.AvatarURL,
			"name":      user.Name,
			"theme":     user.Theme,
		},
	})
}

func Logout(c *gin.Context, db *gorm.DB, rt services.Realtime) {
	user := c.MustGet("user").(*model.User)

	if err := db.Model(user).Update("token_hash", "").Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to clear session"})
		return
	}

	if err := rt.SyncSession(c.Request.Context(), user, false); err != nil {
		log.Printf("session mirror: %v", err)
	}

	c.Status(204)
}

func Current(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	c.JSON(200, gin.H{
		"name":      user.Name,
		"email":     user.Email,
		"avatarURL": user.AvatarURL,
		"theme":     user.Theme,
	})
}
