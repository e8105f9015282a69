package card

import (
	"taskpro/dto"
	"taskpro/httperr"
	"taskpro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UpdateCard(c *gin.Context, db *gorm.DB, rt services.Realtime) {
	userID := c.MustGet("userId").(uint)

	cardID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"message": "Card not found"})
		return
	}

	var request dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}
	if request.Empty() {
		c.JSON(400, gin.H{"message": "Body must have at least one field"})
		return
	}
	if request.Deadline != nil && !dto.ValidDeadline(*request.Deadline) {
		c.JSON(400, gin.H{"message": "Deadline is out of range"})
		return
	}

	card, err := services.AuthorizeCard(db, userID, cardID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	updates := map[string]interface{}{}
	if request.Title != nil {
		updates["title"] = *request.Title
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.Priority != nil {
		updates["priority"] = *request.Priority
	}
	if request.Deadline != nil {
		updates["deadline"] = *request.Deadline
		// Rescheduling re-arms the reminder.
		updates["reminder_sent"] = false
	}

	if err := db.Model(card).Updates(updates).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to update card"})
		return
	}

	syncCard(c, rt, card)

	c.JSON(200, cardResponse(card))
}
