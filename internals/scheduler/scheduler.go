// internals/scheduler/scheduler.go
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authModel "elevencentral_backend/internals/features/users/auth/model"
	"elevencentral_backend/internals/features/university/content"
)

// Scheduler runs the recurring maintenance jobs: purging expired
// blacklist entries hourly and a nightly sequence sweep.
type Scheduler struct {
	cron    *cron.Cron
	db      *gorm.DB
	content *content.Service
}

func New(db *gorm.DB) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		db:      db,
		content: content.NewService(db),
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.cleanupTokenBlacklist); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 3 * * *", s.normalizeSequences); err != nil {
		return err
	}
	s.cron.Start()
	log.Println("[INFO] ⏰ scheduler started (hourly blacklist cleanup, nightly sequence sweep)")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) cleanupTokenBlacklist() {
	res := s.db.Unscoped().
		Where("expired_at < ?", time.Now()).
		Delete(&authModel.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[ERROR] blacklist cleanup failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[INFO] blacklist cleanup removed %d expired tokens", res.RowsAffected)
	}
}

func (s *Scheduler) normalizeSequences() {
	out, err := s.content.NormalizeAll()
	if err != nil {
		log.Printf("[ERROR] nightly sequence sweep failed: %v", err)
		return
	}
	total := 0
	for _, changes := range out {
		total += len(changes)
	}
	log.Printf("[INFO] nightly sequence sweep applied %d changes", total)
}
