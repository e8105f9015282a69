package card

import (
	"strconv"

	"taskpro/httperr"
	"taskpro/middleware"
	"taskpro/model"
	"taskpro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CardController(router *gin.Engine, db *gorm.DB, rt services.Realtime) {
	routes := router.Group("/api/boards/cards", middleware.AccessTokenMiddleware(db))
	{
		// :id is the owning column for create/list, the card itself for
		// update/delete.
		routes.POST("/:id", func(c *gin.Context) {
			CreateCard(c, db, rt)
		})
		routes.GET("/:id", func(c *gin.Context) {
			ListCards(c, db)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateCard(c, db, rt)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateCard(c, db, rt)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteCard(c, db, rt)
		})
	}
}

func cardResponse(card *model.Card) gin.H {
	return gin.H{
		"id":          card.CardID,
		"title":       card.Title,
		"description": card.Description,
		"priority":    card.Priority,
		"deadline":    card.Deadline,
		"owner":       card.ColumnID,
	}
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func ListCards(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	columnID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"message": "Column not found"})
		return
	}

	column, err := services.AuthorizeColumn(db, userID, columnID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var cards []model.Card
	if err := db.Where("column_id = ?", column.ColumnID).Find(&cards).Error; err != nil {
		c.JSON(500, gin.H{"message": "Database error"})
		return
	}

	response := make([]gin.H, 0, len(cards))
	for i := range cards {
		response = append(response, cardResponse(&cards[i]))
	}
	c.JSON(200, response)
}
