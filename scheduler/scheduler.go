package scheduler

import (
	"log"
	"time"

	"taskpro/model"
	"taskpro/services"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartScheduler runs the deadline-reminder sweep once a minute in the
// background.
func StartScheduler(db *gorm.DB, mailer services.Mailer) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 * * * * *", func() {
		SendDeadlineReminders(db, mailer)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started")
}

type dueCard struct {
	CardID     uint
	CardTitle  string
	BoardTitle string
	Email      string
}

// SendDeadlineReminders emails the board owner for every card that is due
// within the next hour and has not been reminded about yet. A failed send
// leaves the flag unset so the next sweep retries it.
func SendDeadlineReminders(db *gorm.DB, mailer services.Mailer) {
	now := time.Now().UnixMilli()
	horizon := time.Now().Add(time.Hour).UnixMilli()

	var due []dueCard
	err := db.Table("cards").
		Select("cards.card_id, cards.title AS card_title, boards.title AS board_title, users.email").
		Joins("JOIN columns ON columns.column_id = cards.column_id").
		Joins("JOIN boards ON boards.board_id = columns.board_id").
		Joins("JOIN users ON users.user_id = boards.user_id").
		Where("cards.reminder_sent = ? AND cards.deadline BETWEEN ? AND ?", false, now, horizon).
		Scan(&due).Error
	if err != nil {
		log.Printf("reminder sweep: %v", err)
		return
	}

	for _, card := range due {
		body := services.ReminderBody(card.CardTitle, card.BoardTitle)
		if err := mailer.Send(card.Email, "Card deadline approaching", body); err != nil {
			log.Printf("reminder mail for card %d: %v", card.CardID, err)
			continue
		}
		if err := db.Model(&model.Card{}).Where("card_id = ?", card.CardID).
			Update("reminder_sent", true).Error; err != nil {
			log.Printf("reminder flag for card %d: %v", card.CardID, err)
		}
	}
}
