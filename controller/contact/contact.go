package contact

import (
	"errors"
	"regexp"
	"strconv"

	"taskpro/dto"
	"taskpro/middleware"
	"taskpro/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{1,3}[)]?[- ]?[0-9]{1,3}[- ]?[0-9]{1,6}$`)

func ContactController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/api/contacts", middleware.AccessTokenMiddleware(db))
	{
		routes.GET("", func(c *gin.Context) {
			ListContacts(c, db)
		})
		routes.POST("", func(c *gin.Context) {
			CreateContact(c, db)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetContact(c, db)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateContact(c, db)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteContact(c, db)
		})
		routes.PATCH("/:id/favorite", func(c *gin.Context) {
			UpdateFavorite(c, db)
		})
	}
}

func contactResponse(contact *model.Contact) gin.H {
	return gin.H{
		"id":       contact.ContactID,
		"name":     contact.Name,
		"email":    contact.Email,
		"phone":    contact.Phone,
		"favorite": contact.Favorite,
		"owner":    contact.UserID,
	}
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// findOwned resolves a contact only within the caller's own book, so a
// foreign contact id behaves exactly like a missing one.
func findOwned(db *gorm.DB, userID, contactID uint) (*model.Contact, error) {
	var contact model.Contact
	err := db.Where("contact_id = ? AND user_id = ?", contactID, userID).First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func ListContacts(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var contacts []model.Contact
	if err := db.Where("user_id = ?", userID).Find(&contacts).Error; err != nil {
		c.JSON(500, gin.H{"message": "Database error"})
		return
	}

	response := make([]gin.H, 0, len(contacts))
	for i := range contacts {
		response = append(response, contactResponse(&contacts[i]))
	}
	c.JSON(200, response)
}

func CreateContact(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var request dto.CreateContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}
	if !phonePattern.MatchString(request.Phone) {
		c.JSON(400, gin.H{"message": "Invalid phone number"})
		return
	}

	contact := model.Contact{
		Name:   request.Name,
		Email:  request.Email,
		Phone:  request.Phone,
		UserID: userID,
	}
	if err := db.Create(&contact).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to create contact"})
		return
	}

	c.JSON(201, contactResponse(&contact))
}

func GetContact(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	contactID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"message": "Contact not found"})
		return
	}

	contact, err := findOwned(db, userID, contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"message": "Contact not found"})
			return
		}
		c.JSON(500, gin.H{"message": "Database error"})
		return
	}

	c.JSON(200, contactResponse(contact))
}

func UpdateContact(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	contactID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"message": "Contact not found"})
		return
	}

	var request dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}
	if request.Empty() {
		c.JSON(400, gin.H{"message": "Body must have at least one field"})
		return
	}
	if request.Phone != nil && !phonePattern.MatchString(*request.Phone) {
		c.JSON(400, gin.H{"message": "Invalid phone number"})
		return
	}

	contact, err := findOwned(db, userID, contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"message": "Contact not found"})
			return
		}
		c.JSON(500, gin.H{"message": "Database error"})
		return
	}

	updates := map[string]interface{}{}
	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.Email != nil {
		updates["email"] = *request.Email
	}
	if request.Phone != nil {
		updates["phone"] = *request.Phone
	}

	if err := db.Model(contact).Updates(updates).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to update contact"})
		return
	}

	c.JSON(200, contactResponse(contact))
}

func DeleteContact(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	contactID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"message": "Contact not found"})
		return
	}

	contact, err := findOwned(db, userID, contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"message": "Contact not found"})
			return
		}
		c.JSON(500, gin.H{"message": "Database error"})
		return
	}

	if err := db.Delete(contact).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to delete contact"})
		return
	}

	c.JSON(200, contactResponse(contact))
}

func UpdateFavorite(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	contactID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"message": "Contact not found"})
		return
	}

	var request dto.UpdateFavoriteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}

	contact, err := findOwned(db, userID, contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"message": "Contact not found"})
			return
		}
		c.JSON(500, gin.H{"message": "Database error"})
		return
	}

	if err := db.Model(contact).Update("favorite", *request.Favorite).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to update contact"})
		return
	}

	c.JSON(200, contactResponse(contact))
}
