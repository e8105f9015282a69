package card

import (
	"log"

	"taskpro/httperr"
	"taskpro/model"
	"taskpro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteCard(c *gin.Context, db *gorm.DB, rt services.Realtime) {
	userID := c.MustGet("userId").(uint)

	cardID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"message": "Card not found"})
		return
	}

	card, err := services.AuthorizeCard(db, userID, cardID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := db.Where("card_id = ?", card.CardID).Delete(&model.Card{}).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to delete card"})
		return
	}

	if err := rt.RemoveCard(c.Request.Context(), card.CardID); err != nil {
		log.Printf("card mirror: %v", err)
	}

	c.JSON(200, cardResponse(card))
}
