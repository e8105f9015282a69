package feedback

import (
	"log"
	"os"

	"taskpro/dto"
	"taskpro/middleware"
	"taskpro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func FeedbackController(router *gin.Engine, db *gorm.DB, mailer services.Mailer) {
	router.POST("/api/feedback", middleware.AccessTokenMiddleware(db), func(c *gin.Context) {
		SendFeedback(c, mailer)
	})
}

func supportInbox() string {
	if inbox := os.Getenv("FEEDBACK_INBOX"); inbox != "" {
		return inbox
	}
	return "taskpro.project@gmail.com"
}

func SendFeedback(c *gin.Context, mailer services.Mailer) {
	var request dto.FeedbackRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(400, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}

	body := services.FeedbackBody(request.Email, request.Comment)
	if err := mailer.Send(supportInbox(), "Help Request", body); err != nil {
		log.Printf("feedback mail: %v", err)
		c.JSON(500, gin.H{"message": "Failed to send email"})
		return
	}

	c.JSON(200, gin.H{"message": "Email sent successfully"})
}
