package card

import (
	"log"

	"taskpro/dto"
	"taskpro/httperr"
	"taskpro/model"
	"taskpro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateCard(c *gin.Context, db *gorm.DB, rt services.Realtime) {
	userID := c.MustGet("userId").(uint)

	columnID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"message": "Column not found"})
		return
	}

	var request dto.CreateCardRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}
	if !dto.ValidDeadline(request.Deadline) {
		c.JSON(400, gin.H{"message": "Deadline is out of range"})
		return
	}

	column, err := services.AuthorizeColumn(db, userID, columnID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	card := model.Card{
		Title:       request.Title,
		Description: request.Description,
		Priority:    request.Priority,
		Deadline:    request.Deadline,
		ColumnID:    column.ColumnID,
	}
	if card.Priority == "" {
		card.Priority = model.PriorityNone
	}

	if err := db.Create(&card).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to create card"})
		return
	}

	syncCard(c, rt, &card)

	c.JSON(201, cardResponse(&card))
}

func syncCard(c *gin.Context, rt services.Realtime, card *model.Card) {
	if err := rt.SyncCard(c.Request.Context(), card); err != nil {
		log.Printf("card mirror: %v", err)
	}
}
