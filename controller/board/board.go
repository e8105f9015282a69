package board

import (
	"strconv"

	"taskpro/dto"
	"taskpro/httperr"
	"taskpro/middleware"
	"taskpro/model"
	"taskpro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func BoardController(router *gin.Engine, db *gorm.DB, rt services.Realtime) {
	routes := router.Group("/api/boards", middleware.AccessTokenMiddleware(db))
	{
		routes.GET("", func(c *gin.Context) {
			ListBoards(c, db)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateBoard(c, db, rt)
		})
	}
}

func boardResponse(board *model.Board) gin.H {
	return gin.H{
		"id":         board.BoardID,
		"title":      board.Title,
		"icon":       board.Icon,
		"background": board.Background,
		"owner":      board.UserID,
	}
}

// parseID turns a path parameter into an entity id. Garbage input is
// reported the same way as an id that does not resolve.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func ListBoards(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var boards []model.Board
	if err := db.Where("user_id = ?", userID).Find(&boards).Error; err != nil {
		c.JSON(500, gin.H{"message": "Database error"})
		return
	}

	response := make([]gin.H, 0, len(boards))
	for i := range boards {
		response = append(response, boardResponse(&boards[i]))
	}
	c.JSON(200, response)
}

func UpdateBoard(c *gin.Context, db *gorm.DB, rt services.Realtime) {
	userID := c.MustGet("userId").(uint)

	boardID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"message": "Board not found"})
		return
	}

	var request dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}
	if request.Empty() {
		c.JSON(400, gin.H{"message": "Body must have at least one field"})
		return
	}

	board, err := services.AuthorizeBoard(db, userID, boardID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	updates := map[string]interface{}{}
	if request.Title != nil {
		updates["title"] = *request.Title
	}
	if request.Icon != nil {
		updates["icon"] = *request.Icon
	}
	if request.Background != nil {
		updates["background"] = *request.Background
	}

	if err := db.Model(board).Updates(updates).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to update board"})
		return
	}

	syncBoard(c, rt, board)

	c.JSON(200, boardResponse(board))
}
