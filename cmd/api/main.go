// @title Stash API
// @description API for savings-challenge app "Stash"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/stash/internal/api"
	"github.com/limbo/stash/internal/repository"
	"github.com/limbo/stash/internal/service"
	"github.com/limbo/stash/pkg/cleanup"
	"github.com/limbo/stash/pkg/config"
	jwtservice "github.com/limbo/stash/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	challengesRepo := repository.NewChallengesRepo(&dbCfg)
	savingsRepo := repository.NewSavingsRepo(&dbCfg)
	statsRepo := repository.NewStatsRepo(&dbCfg)
	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg))
	// Profile syncing and reminder scheduling stay unwired until the
	// companion services exist; both are optional collaborators.
	challengesService := service.NewChallengesService(challengesRepo, savingsRepo, statsRepo, nil)
	savingsService := service.NewSavingsService(challengesRepo, savingsRepo, statsRepo, nil)
	statsService := service.NewStatsService(challengesRepo, statsRepo)
	serv := api.New(&api.ServicesList{
		UserService:       userService,
		ChallengesService: challengesService,
		SavingsService:    savingsService,
		StatsService:      statsService,
		JwtService:        jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
