package main

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// LoggingService keeps request logs in a database separate from the main
// store so log growth never competes with it.
type LoggingService struct {
	db *gorm.DB
}

func NewLoggingService(dbPath string) (*LoggingService, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to logging database: %w", err)
	}

	service := &LoggingService{db: db}

	if err := service.runMigrations(); err != nil {
		return nil, fmt.Errorf("failed to run logging migrations: %w", err)
	}

	return service, nil
}

func (s *LoggingService) runMigrations() error {
	return s.db.AutoMigrate(&RequestLogModel{})
}

// LogRequest records one handled request.
func (s *LoggingService) LogRequest(method, path string, status int, userID, clientIP string, latency time.Duration) error {
	requestLog := RequestLogModel{
		Method:    method,
		Path:      path,
		Status:    status,
		UserID:    userID,
		ClientIP:  clientIP,
		LatencyMs: latency.Milliseconds(),
		LoggedAt:  time.Now(),
	}
	return s.db.Create(&requestLog).Error
}

// GetRequestCountByDay returns the number of requests handled on a
// specific day.
func (s *LoggingService) GetRequestCountByDay(date time.Time) (int64, error) {
	var count int64
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	err := s.db.Model(&RequestLogModel{}).
		Where("logged_at >= ? AND logged_at < ?", startOfDay, endOfDay).
		Count(&count).Error

	return count, err
}

// GetErrorCountByDay returns the number of 5xx responses on a specific
// day.
func (s *LoggingService) GetErrorCountByDay(date time.Time) (int64, error) {
	var count int64
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	err := s.db.Model(&RequestLogModel{}).
		Where("logged_at >= ? AND logged_at < ? AND status >= ?", startOfDay, endOfDay, 500).
		Count(&count).Error

	return count, err
}

// CleanupOldLogs removes request logs older than the specified number of
// days.
func (s *LoggingService) CleanupOldLogs(days int) error {
	cutoff := time.Now().AddDate(0, 0, -days)
	return s.db.Where("logged_at < ?", cutoff).Delete(&RequestLogModel{}).Error
}

// VacuumDatabase runs VACUUM to reclaim space after cleanup.
func (s *LoggingService) VacuumDatabase() error {
	return s.db.Exec("VACUUM").Error
}

func (s *LoggingService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
