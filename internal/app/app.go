package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/humanbelnik/cinevault/internal/config"
	http_auth "github.com/humanbelnik/cinevault/internal/delivery/http/auth"
	http_init "github.com/humanbelnik/cinevault/internal/delivery/http/init"
	http_access_middleware "github.com/humanbelnik/cinevault/internal/delivery/http/middleware/access"
	http_auth_middleware "github.com/humanbelnik/cinevault/internal/delivery/http/middleware/auth"
	http_movie "github.com/humanbelnik/cinevault/internal/delivery/http/movie"
	http_notify "github.com/humanbelnik/cinevault/internal/delivery/http/notify"
	http_settings "github.com/humanbelnik/cinevault/internal/delivery/http/settings"
	http_swagger "github.com/humanbelnik/cinevault/internal/delivery/http/swagger"
	ws_notify "github.com/humanbelnik/cinevault/internal/delivery/ws/notify"
	infra_postgres_admin "github.com/humanbelnik/cinevault/internal/infra/postgres/admin"
	infra_pg_init "github.com/humanbelnik/cinevault/internal/infra/postgres/init"
	infra_postgres_movie "github.com/humanbelnik/cinevault/internal/infra/postgres/movie"
	infra_postgres_settings "github.com/humanbelnik/cinevault/internal/infra/postgres/settings"
	infra_redis_init "github.com/humanbelnik/cinevault/internal/infra/redis/init"
	infra_session_cache "github.com/humanbelnik/cinevault/internal/infra/redis/session"
	infra_s3 "github.com/humanbelnik/cinevault/internal/infra/s3"
	"github.com/humanbelnik/cinevault/internal/infra/s3mock"
	"github.com/humanbelnik/cinevault/internal/seed"
	session_auth "github.com/humanbelnik/cinevault/internal/service/auth/session"
	usecase_movie "github.com/humanbelnik/cinevault/internal/usecase/movie"
	usecase_settings "github.com/humanbelnik/cinevault/internal/usecase/settings"
)

const sessionCacheKey = "session"

// Go serves the admin API until ctx is cancelled.
func Go(ctx context.Context, cfg *config.Config) {
	logger := slog.Default()

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	defer redisConn.Close()
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	defer pgConn.Close()

	thumbnails := mustThumbnailRepository(cfg.S3)

	movieRepository := infra_postgres_movie.New(pgConn)
	settingsRepository := infra_postgres_settings.New(pgConn)
	adminRepository := infra_postgres_admin.New(pgConn)

	hub := ws_notify.New(ws_notify.WithLogger(logger.With(slog.String("component", "hub"))))
	defer hub.Close()

	sessionCache := infra_session_cache.New(redisConn, sessionCacheKey)
	authService := session_auth.New(cfg.Session.TTL, adminRepository, sessionCache, hub)
	authMiddleware := http_auth_middleware.New(authService)

	movieUC := usecase_movie.New(movieRepository, thumbnails, seed.New(), hub,
		usecase_movie.WithLinkTTL(cfg.S3.LinkTTL),
	)
	settingsUC := usecase_settings.New(settingsRepository, hub, cfg.TelegramBot.Username)

	controllerPool := http_init.NewControllerPool(http_access_middleware.ReadOnlyBadGatewayMiddleware(cfg.HTTP.Mode))
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_auth.New(authService, authMiddleware, http_auth.WithLogger(logger)))
	controllerPool.Add(http_movie.New(movieUC, authMiddleware, http_movie.WithLogger(logger)))
	controllerPool.Add(http_settings.New(settingsUC, authMiddleware, http_settings.WithLogger(logger)))
	controllerPool.Add(http_notify.New(hub, authMiddleware, http_notify.WithLogger(logger)))

	controllerPool.Register()
	logger.Info("serving admin API",
		slog.String("port", cfg.HTTP.Port),
		slog.String("mode", cfg.HTTP.Mode),
	)
	controllerPool.RunAll(ctx, cfg.HTTP.Port)
}

// Seed writes the demo catalog straight to the database.
func Seed(ctx context.Context, cfg *config.Config) (int, error) {
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	defer pgConn.Close()

	movieUC := usecase_movie.New(infra_postgres_movie.New(pgConn), nil, seed.New(), nil)
	n, err := movieUC.SeedDemo(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to seed demo catalog: %w", err)
	}
	return n, nil
}

// AddAdmin creates an admin account.
func AddAdmin(ctx context.Context, cfg *config.Config, email string, password string) (string, error) {
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	defer pgConn.Close()

	authService := session_auth.New(cfg.Session.TTL, infra_postgres_admin.New(pgConn), nil, nil)
	admin, err := authService.Register(ctx, email, password)
	if err != nil {
		return "", fmt.Errorf("failed to add admin: %w", err)
	}
	return admin.Email, nil
}

func mustThumbnailRepository(cfg config.S3) usecase_movie.ThumbnailRepository {
	switch infra_s3.ParseClientType(cfg.ClientType) {
	case infra_s3.ClientTypeRealS3:
		storage, err := infra_s3.New(cfg.Bucket, infra_s3.MustEstablishConn(cfg), cfg.Prefix)
		if err != nil {
			log.Fatal(err)
		}
		return storage
	default:
		log.Println("[s3] using in-memory thumbnail storage")
		return s3mock.New(cfg.Prefix)
	}
}
