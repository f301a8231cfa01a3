package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/mindful/unplug/internal/error_values"
	"github.com/mindful/unplug/internal/service"
	"github.com/mindful/unplug/pkg/entity"
	"github.com/mindful/unplug/pkg/httputil"
)

type UpdateScreenTimeRequest struct {
	UserID       string `json:"userId"`
	Date         string `json:"date"`
	TotalMinutes *int   `json:"totalMinutes"`
	Pickups      *int   `json:"pickups"`
	FocusMinutes *int   `json:"focusMinutes"`
}

type StartFocusRequest struct {
	TargetMinutes int      `json:"targetMinutes"`
	BlockedApps   []string `json:"blockedApps"`
}

const dateLayout = "2006-01-02"

func today() string {
	return time.Now().Format(dateLayout)
}

// resolveCurrentUser fetches the acting user for handlers without an
// explicit user parameter, writing the error response itself on failure.
func (s *Server) resolveCurrentUser(w http.ResponseWriter, r *http.Request) (*entity.User, bool) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	user, err := s.userService.Current(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("current user error: no user seeded")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return nil, false
		}
		logger.Error("current user error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resolving user", nil)
		return nil, false
	}
	return user, true
}

func (s *Server) CurrentUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.resolveCurrentUser(w, r)
	if !ok {
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("current user provided")
}

func (s *Server) TodayScreenTime(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.resolveCurrentUser(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	entry, err := s.screenTimeService.GetOrCreateDaily(ctx, user.ID, today())
	if err != nil {
		logger.Error("today screen time error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting screen time", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("today's screen time provided")
}

func (s *Server) UpdateScreenTime(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req UpdateScreenTimeRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update screen time error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		logger.Error("update screen time error: invalid user id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.screenTimeService.ApplyUpdate(ctx, &service.ScreenTimeUpdateRequest{
		UserID:       uid,
		Date:         req.Date,
		TotalMinutes: req.TotalMinutes,
		Pickups:      req.Pickups,
		FocusMinutes: req.FocusMinutes,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("update screen time error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid screen time fields", err)
			return
		}
		logger.Error("update screen time error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating screen time", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("screen time updated")
}

func (s *Server) WeeklyScreenTime(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.resolveCurrentUser(w, r)
	if !ok {
		return
	}
	// Rolling window: today and the six days before it
	startDate := time.Now().AddDate(0, 0, -6).Format(dateLayout)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	window, err := s.screenTimeService.WeeklyWindow(ctx, user.ID, startDate)
	if err != nil {
		logger.Error("weekly screen time error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting weekly screen time", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, window)
	logger.Info("weekly screen time provided")
}

func (s *Server) TodayAppUsage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.resolveCurrentUser(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	usages, err := s.screenTimeService.AppUsageForDay(ctx, user.ID, today())
	if err != nil {
		logger.Error("app usage error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting app usage", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, usages)
	logger.Info("app usage provided")
}

func (s *Server) DailyQuote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	quote, err := s.quoteService.Daily(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoActiveQuotes) {
			logger.Error("daily quote error: no active quotes")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no quotes available", nil)
			return
		}
		logger.Error("daily quote error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting daily quote", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, quote)
	logger.Info("daily quote provided")
}

func (s *Server) AllQuotes(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	quotes, err := s.quoteService.All(ctx)
	if err != nil {
		logger.Error("quotes list error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting quotes", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, quotes)
	logger.Info("quotes provided")
}

func (s *Server) StartFocus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req StartFocusRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("start focus error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	user, ok := s.resolveCurrentUser(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	session, err := s.focusService.Start(ctx, &service.StartFocusRequest{
		UserID:        user.ID,
		TargetMinutes: req.TargetMinutes,
		BlockedApps:   req.BlockedApps,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSessionActive):
			logger.Error("start focus error: session already active")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "focus session already active", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("start focus error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid focus session fields", err)
		default:
			logger.Error("start focus error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while starting focus session", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, session)
	logger.Info("focus session started")
}

func (s *Server) EndFocus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sessionID, err := uuid.Parse(r.PathValue("sessionId"))
	if err != nil {
		logger.Error("end focus error: invalid session id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	session, err := s.focusService.End(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			logger.Error("end focus error: unexist session")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "focus session doesn't exist", nil)
			return
		}
		logger.Error("end focus error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while ending focus session", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, session)
	logger.Info("focus session ended")
}

func (s *Server) ActiveFocus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.resolveCurrentUser(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	session, err := s.focusService.Active(ctx, user.ID)
	if err != nil {
		logger.Error("active focus error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting active focus session", nil)
		return
	}
	// session is nil when the user is idle; clients get JSON null
	httputil.WriteJSONResponse(w, http.StatusOK, session)
	logger.Info("active focus session provided")
}

func (s *Server) FocusSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.resolveCurrentUser(w, r)
	if !ok {
		return
	}
	date := r.URL.Query().Get("date")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	sessions, err := s.focusService.Sessions(ctx, user.ID, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("focus sessions error: invalid date filter")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date filter", err)
			return
		}
		logger.Error("focus sessions error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting focus sessions", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, sessions)
	logger.Info("focus sessions provided")
}

func (s *Server) Achievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.resolveCurrentUser(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	achievements, err := s.userService.GetAchievements(ctx, user.ID)
	if err != nil {
		logger.Error("achievements error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting achievements", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, achievements)
	logger.Info("achievements provided")
}

func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := s.resolveCurrentUser(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	settings, err := s.userService.GetSettings(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSettingsNotFound) {
			logger.Error("settings error: settings don't exist")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "settings don't exist", nil)
			return
		}
		logger.Error("settings error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting settings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("settings provided")
}

func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var update entity.SettingsUpdate
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&update)
	if err != nil {
		logger.Error("update settings error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	user, ok := s.resolveCurrentUser(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	settings, err := s.userService.UpdateSettings(ctx, user.ID, update)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSettingsNotFound) {
			logger.Error("update settings error: settings don't exist")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "settings don't exist", nil)
			return
		}
		logger.Error("update settings error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating settings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("settings updated")
}
