package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/spf13/cobra"

	"github.com/TeenaWhiteGabrial/UAPI-service/internal/auth"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/config"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/handler"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/idgen"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/infrastructure/database"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/logview"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/router"
	"github.com/TeenaWhiteGabrial/UAPI-service/internal/usecase"
	"github.com/TeenaWhiteGabrial/UAPI-service/pkg/logger"
)

// version is stamped by the build.
var version = "dev"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "uapi-server",
		Short: "UAPI management service",
		Long:  "Backend service for managing projects, API definitions and users.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	log := slog.Default()
	hlog.SetLogger(logger.NewSlogAdapter(log))

	log.Info("starting server",
		"version", version,
		"addr", cfg.GetServerAddr(),
	)

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close(db, log)

	codec := auth.NewCodec(cfg.Auth.JWTSecret, cfg.Auth.PasswordSalt, cfg.Auth.TokenTTL)
	sessions := auth.NewRevocationSet()

	idGen, err := idgen.New(cfg.Snowflake.Node)
	if err != nil {
		return fmt.Errorf("failed to create id generator: %w", err)
	}

	userRepo := database.NewUserRepository(db)
	projectRepo := database.NewProjectRepository(db)
	apiRepo := database.NewApiRepository(db)

	userUC := usecase.NewUserUsecase(userRepo, codec, sessions, idGen, log)
	projectUC := usecase.NewProjectUsecase(projectRepo, log)
	apiUC := usecase.NewApiUsecase(apiRepo, projectRepo, log)

	handlers := &router.Handlers{
		User:    handler.NewUserHandler(userUC, log),
		Project: handler.NewProjectHandler(projectUC, log),
		Api:     handler.NewApiHandler(apiUC, log),
		Log:     handler.NewLogHandler(logview.NewViewer(cfg.Log.Dir), log),
		Health:  handler.NewHealthHandler(),
	}

	h := server.New(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithExitWaitTime(5*time.Second),
	)
	router.Setup(h, handlers, codec, sessions)

	h.Spin()
	return nil
}
