package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uuid.UUID `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	IsPremium        bool      `json:"isPremium"`
	DailyGoalMinutes int       `json:"dailyGoalMinutes"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ScreenTimeEntry is the per-day usage snapshot of a user.
// There is at most one entry per (UserID, Date) pair and Classification
// is always derived from TotalMinutes, never set independently.
type ScreenTimeEntry struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	Date           string    `json:"date"` // calendar day, YYYY-MM-DD
	TotalMinutes   int       `json:"totalMinutes"`
	Pickups        int       `json:"pickups"`
	FocusMinutes   int       `json:"focusMinutes"`
	Classification Tier      `json:"classification"`
	CreatedAt      time.Time `json:"createdAt"`
}

type AppUsageEntry struct {
	ID           uuid.UUID `json:"id"`
	ScreenTimeID uuid.UUID `json:"screenTimeId"`
	AppName      string    `json:"appName"`
	AppIcon      string    `json:"appIcon"`
	Minutes      int       `json:"minutes"`
	Category     string    `json:"category"` // social, productivity, entertainment, ...
}

// FocusSession is active while EndTime is nil.
type FocusSession struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       *time.Time `json:"endTime"`
	TargetMinutes int        `json:"targetMinutes"`
	ActualMinutes int        `json:"actualMinutes"`
	IsCompleted   bool       `json:"isCompleted"`
	BlockedApps   []string   `json:"blockedApps"`
}

type DailyQuote struct {
	ID       uuid.UUID `json:"id"`
	Quote    string    `json:"quote"`
	Author   string    `json:"author"`
	Category string    `json:"category"` // motivation, productivity, wellness, ...
	IsActive bool      `json:"isActive"`
}

type UserAchievement struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	AchievementType string    `json:"achievementType"` // streak, goal_met, focus_master, ...
	AchievementName string    `json:"achievementName"`
	Description     string    `json:"description"`
	UnlockedAt      time.Time `json:"unlockedAt"`
}

type UserSettings struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	Notifications  bool      `json:"notifications"`
	DarkMode       bool      `json:"darkMode"`
	UsageAlerts    bool      `json:"usageAlerts"`
	FocusReminders bool      `json:"focusReminders"`
	WeeklyReports  bool      `json:"weeklyReports"`
}

// ScreenTimeUpdate is a partial update of a screen time entry.
// Nil fields keep their stored value.
type ScreenTimeUpdate struct {
	TotalMinutes   *int  `json:"totalMinutes,omitempty"`
	Pickups        *int  `json:"pickups,omitempty"`
	FocusMinutes   *int  `json:"focusMinutes,omitempty"`
	Classification *Tier `json:"classification,omitempty"`
}

// SettingsUpdate is a partial update of a user settings record.
// Nil fields keep their stored value.
type SettingsUpdate struct {
	Notifications  *bool `json:"notifications,omitempty"`
	DarkMode       *bool `json:"darkMode,omitempty"`
	UsageAlerts    *bool `json:"usageAlerts,omitempty"`
	FocusReminders *bool `json:"focusReminders,omitempty"`
	WeeklyReports  *bool `json:"weeklyReports,omitempty"`
}
