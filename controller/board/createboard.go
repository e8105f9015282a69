package board

import (
	"log"

	"taskpro/dto"
	"taskpro/middleware"
	"taskpro/model"
	"taskpro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateBoardController(router *gin.Engine, db *gorm.DB, rt services.Realtime) {
	router.POST("/api/boards", middleware.AccessTokenMiddleware(db), func(c *gin.Context) {
		CreateBoard(c, db, rt)
	})
}

func CreateBoard(c *gin.Context, db *gorm.DB, rt services.Realtime) {
	userID := c.MustGet("userId").(uint)

	var request dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}

	board := model.Board{
		Title:      request.Title,
		Icon:       request.Icon,
		Background: request.Background,
		UserID:     userID,
	}
	if board.Icon == "" {
		board.Icon = model.DefaultBoardIcon
	}
	if board.Background == "" {
		board.Background = model.DefaultBoardBackground
	}

	if err := db.Create(&board).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to create board"})
		return
	}

	syncBoard(c, rt, &board)

	c.JSON(201, boardResponse(&board))
}

func syncBoard(c *gin.Context, rt services.Realtime, board *model.Board) {
	if err := rt.SyncBoard(c.Request.Context(), board); err != nil {
		log.Printf("board mirror: %v", err)
	}
}
