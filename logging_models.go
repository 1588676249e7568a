package main

import "time"

// One row per handled HTTP request, written by the request logger
// middleware into the logging database.
type RequestLogModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Method    string    `gorm:"column:method;index" json:"method"`
	Path      string    `gorm:"column:path;index" json:"path"`
	Status    int       `gorm:"column:status;index" json:"status"`
	UserID    string    `gorm:"column:user_id;index" json:"user_id"`
	ClientIP  string    `gorm:"column:client_ip" json:"client_ip"`
	LatencyMs int64     `gorm:"column:latency_ms" json:"latency_ms"`
	LoggedAt  time.Time `gorm:"column:logged_at;index" json:"logged_at"`
}

func (RequestLogModel) TableName() string {
	return "request_logs"
}
