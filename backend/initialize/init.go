package initialize

import (
	"fmt"
	"net/http"
	"time"

	"fleetd/backend/app/controllers"
	"fleetd/backend/app/db"
	jwtutil "fleetd/backend/app/jwt"
	"fleetd/backend/app/middleware"
	"fleetd/backend/app/models"
	"fleetd/backend/app/repo"
	"fleetd/backend/app/services"
	"fleetd/backend/config"
	"fleetd/backend/global"
	"fleetd/backend/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Fleet    *services.FleetService
	Commands *services.CommandService
	Users    *services.UserService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{Driver: cfg.DB.Driver, DSN: cfg.DB.DSN})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(
		&models.Agent{},
		&models.Command{},
		&models.CommandResponse{},
		&models.AuditEvent{},
		&models.User{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Repositories and services
	agentRepo := repo.NewAgentRepository(gdb)
	cmdRepo := repo.NewCommandRepository(gdb)
	respRepo := repo.NewResponseRepository(gdb)
	auditRepo := repo.NewAuditRepository(gdb)
	userRepo := repo.NewUserRepository(gdb)

	fleetSvc := services.NewFleetService(agentRepo, time.Duration(cfg.Liveness.ThresholdSec)*time.Second)
	cmdSvc := services.NewCommandService(cmdRepo, respRepo, auditRepo)
	userSvc := services.NewUserService(userRepo)
	if cfg.Auth.OperatorUser != "" && cfg.Auth.OperatorPass != "" {
		if err := userSvc.EnsureOperator(cfg.Auth.OperatorUser, cfg.Auth.OperatorPass); err != nil {
			return nil, fmt.Errorf("seed operator: %w", err)
		}
	}

	// Controllers and router
	signer := &jwtutil.Signer{Secret: []byte(cfg.Auth.JWTSecret), Issuer: cfg.Auth.JWTIssuer, ExpMin: cfg.Auth.JWTExpMin}
	mw := &middleware.Auth{Token: cfg.Auth.Token, Signer: signer}
	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(userSvc, signer)
	agentCtrl := controllers.NewAgentController(fleetSvc, cmdSvc)
	cmdCtrl := controllers.NewCommandController(cmdSvc)

	h := router.NewRouter(httpCtrl, authCtrl, agentCtrl, cmdCtrl, mw)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Fleet: fleetSvc, Commands: cmdSvc, Users: userSvc}, nil
}
