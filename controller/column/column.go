package column

import (
	"log"
	"strconv"

	"taskpro/dto"
	"taskpro/httperr"
	"taskpro/middleware"
	"taskpro/model"
	"taskpro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ColumnController(router *gin.Engine, db *gorm.DB, rt services.Realtime) {
	routes := router.Group("/api/boards/columns", middleware.AccessTokenMiddleware(db))
	{
		// :id is the owning board for create/list, the column itself for
		// update/delete. Same split as the card routes.
		routes.POST("/:id", func(c *gin.Context) {
			CreateColumn(c, db, rt)
		})
		routes.GET("/:id", func(c *gin.Context) {
			ListColumns(c, db)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateColumn(c, db, rt)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateColumn(c, db, rt)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteColumn(c, db, rt)
		})
	}
}

func columnResponse(column *model.Column) gin.H {
	return gin.H{
		"id":    column.ColumnID,
		"title": column.Title,
		"owner": column.BoardID,
	}
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func CreateColumn(c *gin.Context, db *gorm.DB, rt services.Realtime) {
	userID := c.MustGet("userId").(uint)

	boardID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"message": "Board not found"})
		return
	}

	var request dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}

	board, err := services.AuthorizeBoard(db, userID, boardID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	column := model.Column{
		Title:   request.Title,
		BoardID: board.BoardID,
	}
	if err := db.Create(&column).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to create column"})
		return
	}

	syncColumn(c, rt, &column)

	c.JSON(201, columnResponse(&column))
}

func ListColumns(c *gin.Context, db *gorm.DB) {
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

	var columns []model.Column
	if err := db.Where("board_id = ?", board.BoardID).Find(&columns).Error; err != nil {
		c.JSON(500, gin.H{"message": "Database error"})
		return
	}
	if len(columns) == 0 {
		c.JSON(404, gin.H{"message": "No columns found"})
		return
	}

	response := make([]gin.H, 0, len(columns))
	for i := range columns {
		response = append(response, columnResponse(&columns[i]))
	}
	c.JSON(200, response)
}

func UpdateColumn(c *gin.Context, db *gorm.DB, rt services.Realtime) {
	userID := c.MustGet("userId").(uint)

	columnID, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"message": "Column not found"})
		return
	}

	var request dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}
	if request.Empty() {
		c.JSON(400, gin.H{"message": "Body must have at least one field"})
		return
	}

	column, err := services.AuthorizeColumn(db, userID, columnID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := db.Model(column).Update("title", *request.Title).Error; err != nil {
		c.JSON(500, gin.H{"message": "Failed to update column"})
		return
	}

	syncColumn(c, rt, column)

	c.JSON(200, columnResponse(column))
}

func DeleteColumn(c *gin.Context, db *gorm.DB, rt services.Realtime) {
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

	if err := services.CascadeDeleteColumn(db, column.ColumnID); err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := rt.RemoveColumn(c.Request.Context(), column.ColumnID); err != nil {
		log.Printf("column mirror: %v", err)
	}

	c.JSON(200, columnResponse(column))
}

func syncColumn(c *gin.Context, rt services.Realtime, column *model.Column) {
	if err := rt.SyncColumn(c.Request.Context(), column); err != nil {
		log.Printf("column mirror: %v", err)
	}
}
