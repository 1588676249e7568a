package main

import (
	"log"
	"time"
)

// CleanupScheduler trims old request logs once a day, starting at the
// next midnight.
type CleanupScheduler struct {
	loggingService *LoggingService
	ticker         *time.Ticker
	stopChan       chan bool
}

func NewCleanupScheduler(loggingService *LoggingService) *CleanupScheduler {
	return &CleanupScheduler{
		loggingService: loggingService,
		stopChan:       make(chan bool),
	}
}

func (cs *CleanupScheduler) Start() {
	log.Printf("Starting cleanup scheduler - will run daily at midnight")

	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	durationUntilMidnight := nextMidnight.Sub(now)

	firstRunTimer := time.NewTimer(durationUntilMidnight)

	go func() {
		select {
		case <-firstRunTimer.C:
			cs.runCleanup()
		case <-cs.stopChan:
			firstRunTimer.Stop()
			return
		}

		cs.ticker = time.NewTicker(24 * time.Hour)
		defer cs.ticker.Stop()

		for {
			select {
			case <-cs.ticker.C:
				cs.runCleanup()
			case <-cs.stopChan:
				log.Printf("Cleanup scheduler stopped")
				return
			}
		}
	}()
}

func (cs *CleanupScheduler) Stop() {
	close(cs.stopChan)
	if cs.ticker != nil {
		cs.ticker.Stop()
	}
}

func (cs *CleanupScheduler) runCleanup() {
	log.Printf("Running scheduled cleanup of request logs older than %d days", LOG_RETENTION_DAYS)

	err := cs.loggingService.CleanupOldLogs(LOG_RETENTION_DAYS)
	if err != nil {
		log.Printf("Error during cleanup: %v", err)
		return
	}

	if err := cs.loggingService.VacuumDatabase(); err != nil {
		log.Printf("Error during VACUUM: %v", err)
	}
}
