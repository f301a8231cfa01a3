// @title Unplug API
// @description API for digital wellness dashboard "Unplug"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"

	"github.com/mindful/unplug/internal/api"
	"github.com/mindful/unplug/internal/repository"
	"github.com/mindful/unplug/internal/service"
	"github.com/mindful/unplug/pkg/cleanup"
	"github.com/mindful/unplug/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	store := repository.NewStore()
	if err := repository.Seed(context.Background(), store); err != nil {
		log.Fatal("seeding store error: " + err.Error())
	}
	serv := api.New(&api.ServicesList{
		UserService: service.NewUserService(
			repository.NewUsersRepo(store),
			repository.NewSettingsRepo(store),
			repository.NewAchievementsRepo(store),
		),
		ScreenTimeService: service.NewScreenTimeService(
			repository.NewScreenTimeRepo(store),
			repository.NewAppUsageRepo(store),
		),
		FocusService: service.NewFocusService(repository.NewFocusSessionsRepo(store)),
		QuoteService: service.NewQuoteService(repository.NewQuotesRepo(store)),
	})
	err := serv.Run(cfg.GetStringOrDefault("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
