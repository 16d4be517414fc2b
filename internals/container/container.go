// Package container builds the application context that every route and
// background job is wired from.
package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"sponsorship_backend/internals/configs"
	database "sponsorship_backend/internals/databases"
	requestModel "sponsorship_backend/internals/features/sponsorships/requests/model"
	requestRepo "sponsorship_backend/internals/features/sponsorships/requests/repository"
	authModel "sponsorship_backend/internals/features/users/auth/model"
	authRepo "sponsorship_backend/internals/features/users/auth/repository"
	"sponsorship_backend/internals/features/users/auth/scheduler"
	authService "sponsorship_backend/internals/features/users/auth/service"
	"sponsorship_backend/internals/features/users/auth/session"
	"sponsorship_backend/internals/seeds"
)

// AppContext is owned by main for the life of the process.
type AppContext struct {
	Config *configs.Config
	DB     *gorm.DB
	Redis  *redis.Client

	Users    *authRepo.UserRepository
	Requests *requestRepo.SponsorshipRequestRepository

	SessionStore session.Store
	Sessions     *session.Provider
	Auth         *authService.AuthService

	StartedAt time.Time

	cleanup *cron.Cron
}

// Models lists every table the application owns.
func Models() []interface{} {
	return []interface{}{
		&authModel.UserAccount{},
		&authModel.Session{},
		&requestModel.SponsorshipRequest{},
	}
}

// New connects storage, creates missing tables, picks the session store and
// runs the seeds.
func New(ctx context.Context, cfg *configs.Config) (*AppContext, error) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db, Models()...); err != nil {
		_ = database.Close(db)
		return nil, err
	}

	ac := &AppContext{
		Config:    cfg,
		DB:        db,
		Users:     authRepo.NewUserRepository(db),
		Requests:  requestRepo.NewSponsorshipRequestRepository(db),
		StartedAt: time.Now(),
	}

	switch cfg.SessionStore {
	case configs.SessionStoreRedis:
		rdb, err := database.ConnectRedis(cfg)
		if err != nil {
			ac.Close()
			return nil, err
		}
		ac.Redis = rdb
		ac.SessionStore = session.NewRedisStore(rdb)
	case configs.SessionStoreDB, "":
		ac.SessionStore = session.NewGormStore(db)
	default:
		ac.Close()
		return nil, fmt.Errorf("unsupported SESSION_STORE %q", cfg.SessionStore)
	}

	ac.Sessions = session.NewProvider(ac.SessionStore, ac.Users, cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)
	ac.Auth = authService.NewAuthService(ac.Users, ac.Sessions, cfg.AllowAdminSignup)

	if err := seeds.RunAllSeeds(ctx, cfg, ac.Users); err != nil {
		ac.Close()
		return nil, err
	}
	return ac, nil
}

// StartBackgroundJobs schedules expired-session cleanup. Redis expires keys
// itself, so nothing is scheduled for it.
func (ac *AppContext) StartBackgroundJobs() error {
	if ac.Redis != nil || ac.Config.SessionCleanupCron == "" {
		return nil
	}
	c, err := scheduler.StartSessionCleanupScheduler(ac.SessionStore, ac.Config.SessionCleanupCron)
	if err != nil {
		return err
	}
	ac.cleanup = c
	return nil
}

// Close stops background jobs and releases connections. Safe to call twice.
func (ac *AppContext) Close() {
	if ac.cleanup != nil {
		<-ac.cleanup.Stop().Done()
		ac.cleanup = nil
	}
	if ac.Redis != nil {
		if err := ac.Redis.Close(); err != nil {
			log.Printf("[WARN] close redis: %v", err)
		}
		ac.Redis = nil
	}
	if ac.DB != nil {
		if err := database.Close(ac.DB); err != nil {
			log.Printf("[WARN] close db: %v", err)
		}
		ac.DB = nil
	}
}
