package bootstrap

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"github.com/yukikurage/project-tracker/internal/config"
	"github.com/yukikurage/project-tracker/internal/database"
	"github.com/yukikurage/project-tracker/internal/handlers"
	"github.com/yukikurage/project-tracker/internal/logger"
	"github.com/yukikurage/project-tracker/internal/repository"
	"github.com/yukikurage/project-tracker/internal/router"
	"github.com/yukikurage/project-tracker/internal/seed"
	"github.com/yukikurage/project-tracker/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildContainer wires the application. cfg may be nil, in which case the
// configuration is loaded from file and environment.
func BuildContainer(cfg *config.Config) *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		if cfg != nil {
			return cfg, nil
		}
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return database.Connect(cfg)
	})

	// session store
	do.Provide(inj, func(i *do.Injector) (sessions.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewSessionStore(cfg)
	})

	// seed
	do.Provide(inj, func(i *do.Injector) (*seed.Seeder, error) {
		cfg := do.MustInvoke[*config.Config](i)
		catalog, err := seed.LoadCatalog(cfg.Seed.CatalogPath)
		if err != nil {
			return nil, err
		}
		return seed.NewSeeder(do.MustInvoke[*gorm.DB](i), catalog, do.MustInvoke[*zap.Logger](i)), nil
	})

	// repositories
	do.Provide(inj, func(i *do.Injector) (repository.UserRepository, error) {
		return repository.NewUserRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repository.ObjectRepository, error) {
		return repository.NewObjectRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repository.SectionRepository, error) {
		return repository.NewSectionRepository(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repository.PartRepository, error) {
		return repository.NewPartRepository(do.MustInvoke[*gorm.DB](i)), nil
	})

	// services
	do.Provide(inj, func(i *do.Injector) (*services.AuthService, error) {
		return services.NewAuthService(do.MustInvoke[repository.UserRepository](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*services.HierarchyService, error) {
		return services.NewHierarchyService(
			do.MustInvoke[repository.ObjectRepository](i),
			do.MustInvoke[repository.SectionRepository](i),
			do.MustInvoke[repository.PartRepository](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*services.AdminService, error) {
		return services.NewAdminService(do.MustInvoke[repository.UserRepository](i)), nil
	})

	// handlers
	do.Provide(inj, func(i *do.Injector) (*handlers.AuthHandler, error) {
		return handlers.NewAuthHandler(do.MustInvoke[*services.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handlers.HierarchyHandler, error) {
		return handlers.NewHierarchyHandler(do.MustInvoke[*services.HierarchyService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handlers.AdminHandler, error) {
		return handlers.NewAdminHandler(do.MustInvoke[*services.AdminService](i)), nil
	})

	// router
	do.Provide(inj, func(i *do.Injector) (*gin.Engine, error) {
		cfg := do.MustInvoke[*config.Config](i)
		gin.SetMode(cfg.App.Mode)
		return router.NewRouter(router.RouterDeps{
			Log:              do.MustInvoke[*zap.Logger](i),
			SessionName:      cfg.Session.Name,
			SessionStore:     do.MustInvoke[sessions.Store](i),
			UserRepo:         do.MustInvoke[repository.UserRepository](i),
			AuthHandler:      do.MustInvoke[*handlers.AuthHandler](i),
			HierarchyHandler: do.MustInvoke[*handlers.HierarchyHandler](i),
			AdminHandler:     do.MustInvoke[*handlers.AdminHandler](i),
		}), nil
	})

	return inj
}

// NewSessionStore builds the signed cookie store, or the redis store when
// session.store is "redis". MaxAge 0 keeps the cookie for the browser session.
func NewSessionStore(cfg *config.Config) (sessions.Store, error) {
	opts := sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	switch cfg.Session.Store {
	case "", "cookie":
		store := cookie.NewStore([]byte(cfg.Session.Secret))
		store.Options(opts)
		return store, nil
	case "redis":
		store, err := redisStore.NewStore(
			cfg.Redis.PoolSize,
			"tcp",
			cfg.Redis.Addr,
			"", // username (empty for default user)
			cfg.Redis.Password,
			[]byte(cfg.Session.Secret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
		store.Options(opts)
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.Session.Store)
	}
}
