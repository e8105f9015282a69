package user

import (
	"os"
	"path/filepath"
	"strings"

	"taskpro/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func avatarDir() string {
	if dir := os.Getenv("AVATAR_DIR"); dir != "" {
		return dir
	}
	return filepath.Join("public", "avatars")
}

func UpdateAvatar(c *gin.Context, db *gorm.DB) {
	user := c.MustGet("user").(*model.User)

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(400, gin.H{"message": "Avatar file is required"})
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		c.JSON(400, gin.H{"message": "Avatar must be an image"})
		return
	}

	extname := filepath.Ext(file.Filename)
	basename := strings.TrimSuffix(filepath.Base(file.Filename), extname)
	filename := basename + "-" + uuid.NewString() + extname

	if err := os.MkdirAll(avatarDir(), 0o755); err != nil {
		c.JSON(500, gin.H{"message": "Failed to store avatar"})
		return
	}
	if err := c.SaveUploadedFile(file, filepath.Join(avatarDir(), filename)); err != nil {
		c.JSON(500, gin.H{"message": "Failed to store avatar"})
		return
	}

	avatarURL := "/avatars/" + filename
	if err := db.Model(user).Update("avatar_url", avatarURL).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to update avatar"})
		return
	}

	c.JSON(200, gin.H{"avatarURL": user.AvatarURL})
}
