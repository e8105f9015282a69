package board

import (
	"log"

	"taskpro/httperr"
	"taskpro/middleware"
	"taskpro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteBoardController(router *gin.Engine, db *gorm.DB, rt services.Realtime) {
	router.DELETE("/api/boards/:id", middleware.AccessTokenMiddleware(db), func(c *gin.Context) {
		DeleteBoard(c, db, rt)
	})
}

func DeleteBoard(c *gin.Context, db *gorm.DB, rt services.Realtime) {
	userID := c.MustGet("userId").(uint)

	boardID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"message": "Board not found"})
		return
	}

	board, err := services.AuthorizeBoard(db, userID, boardID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := services.CascadeDeleteBoard(db, board.BoardID); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := rt.RemoveBoard(c.Request.Context(), board.BoardID); err != nil {
		log.Printf("board mirror: %v", err)
	}

	c.JSON(200, boardResponse(board))
}
