package connection

import (
	"log"
	"path/filepath"

	"taskpro/controller/auth"
	"taskpro/controller/board"
	"taskpro/controller/card"
	"taskpro/controller/column"
	"taskpro/controller/contact"
	"taskpro/controller/feedback"
	"taskpro/controller/user"
	"taskpro/scheduler"
	"taskpro/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	router := gin.Default()

	DB, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var rt services.Realtime = services.NoopRealtime{}
	FB, err := FBConnection()
	if err != nil {
		log.Printf("Firestore mirror disabled: %v", err)
	} else {
		rt = services.NewFirestoreRealtime(FB)
	}

	var mailer services.Mailer
	emailConfig, err := services.LoadEmailConfig()
	if err != nil {
		log.Fatalf("Failed to load email config: %v", err)
	}
	mailer = services.NewSMTPMailer(emailConfig)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())
	router.Static("/avatars", filepath.Join("public", "avatars"))

	auth.AuthController(router, DB, rt)
	user.UserController(router, DB)

	board.BoardController(router, DB, rt)
	board.CreateBoardController(router, DB, rt)
	board.DeleteBoardController(router, DB, rt)

	column.ColumnController(router, DB, rt)
	card.CardController(router, DB, rt)

	contact.ContactController(router, DB)
	feedback.FeedbackController(router, DB, mailer)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "Route not found"})
	})

	scheduler.StartScheduler(DB, mailer)

	router.Run()
}
