package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/traPtitech/atelier/repository"
	"github.com/traPtitech/atelier/repository/gorm"
	"github.com/traPtitech/atelier/service"
	"github.com/traPtitech/atelier/utils/gormzap"
)

// serveCommand サーバー起動コマンド
func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve atelier API",
		Run: func(_ *cobra.Command, _ []string) {
			// Logger
			logger := getLogger()
			defer logger.Sync()

			logger.Info(fmt.Sprintf("atelier %s (revision %s)", Version, Revision))

			// Message Hub
			hub := hub.New()

			// Database
			logger.Info("connecting database...")
			engine, err := c.getDatabase()
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			engine.Logger = gormzap.New(logger.Named("gorm"), gormzap.WithSlowThreshold(200*time.Millisecond))
			db, err := engine.DB()
			if err != nil {
				logger.Fatal("failed to get *sql.DB", zap.Error(err))
			}
			defer db.Close()
			logger.Info("database connection was established")

			// Repository
			logger.Info("setting up repository...")
			repo, err := gorm.NewGormRepository(engine, hub, logger)
			if err != nil {
				logger.Fatal("failed to initialize repository", zap.Error(err))
			}
			init, err := repo.Sync()
			if err != nil {
				logger.Fatal("failed to sync repository", zap.Error(err))
			}
			if init {
				logger.Info("database was initialized")
			}
			logger.Info("repository was set up")

			if len(c.OwnerOpenID) == 0 {
				logger.Warn("ownerOpenId is not set. no user will be granted the admin role automatically.")
			}

			// サーバー作成
			server, err := newServer(hub, engine, repo, logger, &c)
			if err != nil {
				logger.Fatal("failed to create server", zap.Error(err))
			}

			go func() {
				if err := server.Start(fmt.Sprintf(":%d", c.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("the server stopped unexpectedly", zap.Error(err))
				}
			}()

			logger.Info("atelier started")
			waitSIGINT()
			logger.Info("atelier shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.ShutdownTimeout)*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Warn("abnormal shutdown", zap.Error(err))
			}
			logger.Info("atelier shutdown")
		},
	}
}

type Server struct {
	L      *zap.Logger
	SS     *service.Services
	Router *echo.Echo
	Hub    *hub.Hub
	Repo   repository.Repository
}

func (s *Server) Start(address string) error {
	return s.Router.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		err := s.Router.Shutdown(ctx)
		s.L.Info("Router shutdown")
		return err
	})
	eg.Go(func() error {
		s.Hub.Close()
		s.L.Info("Hub shutdown")
		return nil
	})
	return eg.Wait()
}
