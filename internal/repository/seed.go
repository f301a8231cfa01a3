package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mindful/unplug/pkg/entity"
)

// Seed fills a store with the demo dataset the dashboard ships with:
// one user, five quotes, today's screen time entry with its app usage
// breakdown, one settings row and two achievements.
func Seed(ctx context.Context, store *Store) error {
	users := NewUsersRepo(store)
	quotes := NewQuotesRepo(store)
	entries := NewScreenTimeRepo(store)
	appUsage := NewAppUsageRepo(store)
	settings := NewSettingsRepo(store)
	achievements := NewAchievementsRepo(store)

	uid, err := users.Create(ctx, &entity.User{
		Username:         "sarah_johnson",
		Email:            "sarah.johnson@example.com",
		FirstName:        "Sarah",
		LastName:         "Johnson",
		IsPremium:        true,
		DailyGoalMinutes: 240,
	})
	if err != nil {
		return errors.New("seeding user error: " + err.Error())
	}

	seedQuotes := []entity.DailyQuote{
		{Quote: "The real opportunity for success lies within the person and not in the job.", Author: "Zig Ziglar", Category: "motivation"},
		{Quote: "Focus on being productive instead of busy.", Author: "Tim Ferriss", Category: "productivity"},
		{Quote: "Digital minimalism is a philosophy that helps you question what digital communication tools add value to your life.", Author: "Cal Newport", Category: "wellness"},
		{Quote: "The key is not to prioritize what's on your schedule, but to schedule your priorities.", Author: "Stephen Covey", Category: "productivity"},
		{Quote: "Technology is best when it brings people together.", Author: "Matt Mullenweg", Category: "wellness"},
	}
	for _, q := range seedQuotes {
		q.IsActive = true
		if _, err := quotes.Create(ctx, &q); err != nil {
			return errors.New("seeding quotes error: " + err.Error())
		}
	}

	today := time.Now().Format(dateLayout)
	totalMinutes := 154 // 2h 34m
	entryID, err := entries.Create(ctx, &entity.ScreenTimeEntry{
		UserID:         uid,
		Date:           today,
		TotalMinutes:   totalMinutes,
		Pickups:        47,
		FocusMinutes:   105, // 1h 45m
		Classification: entity.ClassifyMinutes(totalMinutes),
	})
	if err != nil {
		return errors.New("seeding screen time error: " + err.Error())
	}

	seedApps := []entity.AppUsageEntry{
		{AppName: "Facebook", AppIcon: "fab fa-facebook-f", Minutes: 45, Category: "social"},
		{AppName: "Instagram", AppIcon: "fab fa-instagram", Minutes: 38, Category: "social"},
		{AppName: "YouTube", AppIcon: "fab fa-youtube", Minutes: 32, Category: "entertainment"},
		{AppName: "WhatsApp", AppIcon: "fab fa-whatsapp", Minutes: 28, Category: "communication"},
		{AppName: "Games", AppIcon: "fas fa-gamepad", Minutes: 21, Category: "entertainment"},
	}
	for _, a := range seedApps {
		a.ScreenTimeID = entryID
		if _, err := appUsage.Create(ctx, &a); err != nil {
			return errors.New("seeding app usage error: " + err.Error())
		}
	}

	_, err = settings.Create(ctx, &entity.UserSettings{
		UserID:         uid,
		Notifications:  true,
		DarkMode:       false,
		UsageAlerts:    true,
		FocusReminders: true,
		WeeklyReports:  true,
	})
	if err != nil {
		return errors.New("seeding settings error: " + err.Error())
	}

	seedAchievements := []entity.UserAchievement{
		{AchievementType: "streak", AchievementName: "12-Day Streak", Description: "You've maintained healthy screen time for 12 consecutive days!"},
		{AchievementType: "focus_master", AchievementName: "Focus Master", Description: "Completed 10 focus sessions this week"},
	}
	for _, a := range seedAchievements {
		a.UserID = uid
		if _, err := achievements.Create(ctx, &a); err != nil {
			return errors.New("seeding achievements error: " + err.Error())
		}
	}
	return nil
}
