// Package models contains data structures for the application's domain models.
package models

import "time"

// Default goals assigned at registration.
const (
	DefaultStepGoal    = 10000
	DefaultWaterGoal   = 3000
	DefaultCalorieGoal = 2500
	DefaultSleepGoal   = 8.0
)

// User is a registered account with its goals and logging streak.
type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `json:"name"`
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	Age         *int       `json:"age"`
	Height      *float64   `json:"height"`
	Weight      *float64   `json:"weight"`
	StepGoal    int        `gorm:"not null;default:10000" json:"stepGoal"`
	WaterGoal   int        `gorm:"not null;default:3000" json:"waterGoal"`
	CalorieGoal int        `gorm:"not null;default:2500" json:"calorieGoal"`
	SleepGoal   float64    `gorm:"not null;default:8" json:"sleepGoal"`
	Streak      int        `gorm:"not null;default:0" json:"streak"`
	LastLogDate *time.Time `json:"lastLogDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ApplyDefaultGoals fills zero goals with the defaults.
func (u *User) ApplyDefaultGoals() {
	if u.StepGoal == 0 {
		u.StepGoal = DefaultStepGoal
	}
	if u.WaterGoal == 0 {
		u.WaterGoal = DefaultWaterGoal
	}
	if u.CalorieGoal == 0 {
		u.CalorieGoal = DefaultCalorieGoal
	}
	if u.SleepGoal == 0 {
		u.SleepGoal = DefaultSleepGoal
	}
}
