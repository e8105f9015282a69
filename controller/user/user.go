package user

import (
	"errors"
	"strings"

	"taskpro/dto"
	"taskpro/middleware"
	"taskpro/model"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func UserController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/api/users", middleware.AccessTokenMiddleware(db))
	{
		routes.PATCH("", func(c *gin.Context) {
			UpdateUser(c, db)
		})
		routes.PATCH("/themes", func(c *gin.Context) {
			UpdateTheme(c, db)
		})
		routes.PATCH("/avatars", func(c *gin.Context) {
			UpdateAvatar(c, db)
		})
	}
}

func UpdateUser(c *gin.Context, db *gorm.DB) {
	user := c.MustGet("user").(*model.User)

	var request dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}
	if request.Empty() {
		c.JSON(400, gin.H{"message": "Body must have at least one field"})
		return
	}

	updates := map[string]interface{}{}
	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.Email != nil {
		email := strings.ToLower(*request.Email)
		// Only a collision with somebody else is a conflict; re-submitting
		// your own address is a no-op.
		var other model.User
		result := db.Where("email = ? AND user_id <> ?", email, user.UserID).First(&other)
		if result.Error == nil {
			c.JSON(409, gin.H{"message": "Email in use"})
			return
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(500, gin.H{"message": "Database error"})
			return
		}
		updates["email"] = email
	}
	if request.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(500, gin.H{"message": "Failed to hash password"})
			return
		}
		updates["hashed_password"] = string(hashedPassword)
	}

	if err := db.Model(user).Updates(updates).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to update user"})
		return
	}

	c.JSON(200, gin.H{
		"user": gin.H{
			"avatarURL": user.AvatarURL,
			"email":     user.Email,
			"name":      user.Name,
		},
	})
}

func UpdateTheme(c *gin.Context, db *gorm.DB) {
	user := c.MustGet("user").(*model.User)

	var request dto.UpdateThemeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}

	if err := db.Model(user).Update("theme", request.Theme).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to update theme"})
		return
	}

	c.JSON(200, gin.H{"theme": user.Theme})
}
