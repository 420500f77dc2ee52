package models

import "time"

// HealthLog is one snapshot of a user's metrics. Every field except the owner and date is optional.
type HealthLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index:idx_health_logs_user_date,priority:1" json:"userId"`
	Date           time.Time `gorm:"not null;index:idx_health_logs_user_date,priority:2" json:"date"`
	Water          *float64  `json:"water"`
	Steps          *float64  `json:"steps"`
	CaloriesIntake *float64  `json:"caloriesIntake"`
	CaloriesBurned *float64  `json:"caloriesBurned"`
	SleepHours     *float64  `json:"sleepHours"`
	HeartRate      *float64  `json:"heartRate"`
	CreatedAt      time.Time `json:"createdAt"`
}

// DailySummary aggregates a day's logs.
type DailySummary struct {
	Water          float64 `json:"water"`
	Steps          float64 `json:"steps"`
	CaloriesIntake float64 `json:"caloriesIntake"`
	CaloriesBurned float64 `json:"caloriesBurned"`
	SleepHours     float64 `json:"sleepHours"`
	HeartRate      float64 `json:"heartRate"`
}
