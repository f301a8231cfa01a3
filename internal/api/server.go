package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mindful/unplug/internal/service"
	"github.com/mindful/unplug/pkg/cleanup"
)

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	screenTimeService service.ScreenTimeServiceI
	focusService      service.FocusServiceI
	quoteService      service.QuoteServiceI
}

type ServicesList struct {
	UserService       service.UserServiceI
	ScreenTimeService service.ScreenTimeServiceI
	FocusService      service.FocusServiceI
	QuoteService      service.QuoteServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		screenTimeService: servicesOptions.ScreenTimeService,
		focusService:      servicesOptions.FocusService,
		quoteService:      servicesOptions.QuoteService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/user/current", s.CurrentUser)
		r.Route("/screen-time", func(r chi.Router) {
			r.Get("/today", s.TodayScreenTime)
			r.Post("/update", s.UpdateScreenTime)
			r.Get("/weekly", s.WeeklyScreenTime)
		})
		r.Get("/app-usage/today", s.TodayAppUsage)
		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", s.AllQuotes)
			r.Get("/daily", s.DailyQuote)
		})
		r.Route("/focus", func(r chi.Router) {
			r.Post("/start", s.StartFocus)
			r.Post("/end/{sessionId}", s.EndFocus)
			r.Get("/active", s.ActiveFocus)
			r.Get("/sessions", s.FocusSessions)
		})
		r.Get("/achievements", s.Achievements)
		r.Get("/settings", s.GetSettings)
		r.Patch("/settings", s.UpdateSettings)
	})
}

func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.mx,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	return srv.ListenAndServe()
}
