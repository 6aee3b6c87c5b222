package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/stash/internal/service"
)

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	challengesService service.ChallengesServiceI
	savingsService    service.SavingsServiceI
	statsService      service.StatsServiceI
	jwtService        JWTServiceI
}

type ServicesList struct {
	UserService       service.UserServiceI
	ChallengesService service.ChallengesServiceI
	SavingsService    service.SavingsServiceI
	StatsService      service.StatsServiceI
	JwtService        JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		challengesService: servicesOptions.ChallengesService,
		savingsService:    servicesOptions.SavingsService,
		statsService:      servicesOptions.StatsService,
		jwtService:        servicesOptions.JwtService,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/challenges", s.CreateChallenge)
			r.Get("/challenges", s.GetChallenges)
			r.Get("/challenges/{id}", s.GetChallenge)
			r.Put("/challenges/{id}", s.EditChallenge)
			r.Delete("/challenges/{id}", s.DeleteChallenge)
			r.Post("/challenges/{id}/savings/{savingID}/toggle", s.ToggleSaving)
			r.Get("/stats", s.GetStats)
			r.Get("/stats/challenges/{id}/streak", s.GetChallengeStreak)
		})
	})
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}
