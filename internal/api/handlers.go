package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/stash/internal/error_values"
	"github.com/limbo/stash/internal/service"
	"github.com/limbo/stash/pkg/entity"
	"github.com/limbo/stash/pkg/httputil"
)

const dateLayout = "2006-01-02"

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ChallengeRequest configures a goal on creation and edit. EndDate is
// read only in by_date mode, CycleAmount only in by_amount mode.
type ChallengeRequest struct {
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	TargetAmount int64  `json:"target_amount"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date,omitempty"`
	Strategy     string `json:"strategy"`
	Mode         string `json:"mode"`
	CycleAmount  int64  `json:"cycle_amount,omitempty"`
}

type ChallengeResponse struct {
	*entity.Challenge
	CurrentSaved    int64   `json:"current_saved"`
	Progress        float64 `json:"progress"`
	RemainingAmount int64   `json:"remaining_amount"`
}

type GetChallengesResponse struct {
	UserID     string               `json:"uid"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	Challenges []*ChallengeResponse `json:"challenges"`
}

func newChallengeResponse(ch *entity.Challenge) *ChallengeResponse {
	return &ChallengeResponse{
		Challenge:       ch,
		CurrentSaved:    ch.CurrentSavedAmount(),
		Progress:        ch.ProgressPercentage(),
		RemainingAmount: ch.RemainingAmount(),
	}
}

func (req *ChallengeRequest) toConfig() (*service.ChallengeConfig, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, err
	}
	cfg := &service.ChallengeConfig{
		Name:         req.Name,
		Icon:         req.Icon,
		TargetAmount: req.TargetAmount,
		StartDate:    start,
		Strategy:     entity.Strategy(req.Strategy),
		Mode:         entity.PlanMode(req.Mode),
		CycleAmount:  req.CycleAmount,
	}
	if req.EndDate != "" {
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, err
		}
		cfg.EndDate = end
	}
	return cfg, nil
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ChallengeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	cfg, err := req.toConfig()
	if err != nil {
		logger.Error("create challenge error: invalid date format")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "dates must be formatted as YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	ch, err := s.challengesService.CreateChallenge(ctx, uid, cfg)
	if err != nil {
		switch {
		case isConfigError(err):
			logger.Error("create challenge error: invalid config", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create challenge error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create challenge: user doesn't exists", nil)
		default:
			logger.Error("create challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating challenge", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, newChallengeResponse(ch))
	logger.Info("challenge created")
}

func (s *Server) GetChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	challenges, err := s.challengesService.GetUserChallenges(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting challenges list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting challenges list", nil)
		return
	}
	views := make([]*ChallengeResponse, 0, len(challenges))
	for _, ch := range challenges {
		views = append(views, newChallengeResponse(ch))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetChallengesResponse{
		UserID:     uid.String(),
		Page:       page,
		Limit:      limit,
		Challenges: views,
	})
	logger.Info("challenges provided")
}

func (s *Server) GetChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	ch, err := s.challengesService.GetChallenge(ctx, id, uid)
	if err != nil {
		writeChallengeLookupError(w, logger, "get challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newChallengeResponse(ch))
	logger.Info("challenge provided")
}

func (s *Server) EditChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("edit challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("edit challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	var req ChallengeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("edit challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	cfg, err := req.toConfig()
	if err != nil {
		logger.Error("edit challenge error: invalid date format")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "dates must be formatted as YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	ch, err := s.challengesService.EditChallenge(ctx, id, uid, cfg)
	if err != nil {
		switch {
		case isConfigError(err):
			logger.Error("edit challenge error: invalid config", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrTargetBelowSaved):
			logger.Error("edit challenge error: target below saved amount")
			httputil.WriteErrorResponse(w, http.StatusConflict, "target amount must exceed already saved amount", nil)
		default:
			writeChallengeLookupError(w, logger, "edit challenge", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, newChallengeResponse(ch))
	logger.Info("challenge updated")
}

func (s *Server) DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("challenge deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("challenge deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.challengesService.DeleteChallenge(ctx, id, uid)
	if err != nil {
		writeChallengeLookupError(w, logger, "challenge deletion", err)
		return
	}
	logger.Info("challenge deleted")
}

func (s *Server) ToggleSaving(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("toggle saving error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	challengeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("toggle saving error: invalid challenge id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	savingID, err := uuid.Parse(r.PathValue("savingID"))
	if err != nil {
		logger.Error("toggle saving error: invalid saving id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid saving id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	saving, err := s.savingsService.ToggleSaving(ctx, challengeID, savingID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSavingNotFound):
			logger.Error("toggle saving error: unexist saving")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "saving doesn't exist", nil)
		default:
			writeChallengeLookupError(w, logger, "toggle saving", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, saving)
	logger.Info("saving toggled")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var from, to time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		if from, err = time.Parse(dateLayout, raw); err != nil {
			logger.Error("get stats error: invalid from date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "dates must be formatted as YYYY-MM-DD", nil)
			return
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		if to, err = time.Parse(dateLayout, raw); err != nil {
			logger.Error("get stats error: invalid to date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "dates must be formatted as YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	userStats, err := s.statsService.GetUserStats(ctx, uid, from, to)
	if err != nil {
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while aggregating stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, userStats)
	logger.Info("stats provided")
}

func (s *Server) GetChallengeStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get streak error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	streak, err := s.statsService.GetChallengeStreak(ctx, id, uid)
	if err != nil {
		writeChallengeLookupError(w, logger, "get streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"challenge_id": id.String(),
		"streak":       streak,
	})
	logger.Info("streak provided")
}

// Ownership mismatches read as absence so challenge ids can't be probed.
func writeChallengeLookupError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrChallengeNotFound):
		logger.Error(op + " error: unexist challenge")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: challenge has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func isConfigError(err error) bool {
	for _, target := range []error{
		errorvalues.ErrInvalidConfig,
		errorvalues.ErrInvalidTarget,
		errorvalues.ErrInvalidCycleAmount,
		errorvalues.ErrEndBeforeStart,
		errorvalues.ErrInvalidStrategy,
		errorvalues.ErrInvalidMode,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
