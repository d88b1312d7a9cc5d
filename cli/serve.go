package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vigenere-backend/config"
	"vigenere-backend/logging"
	"vigenere-backend/server"
)

func newServeCommand() *cobra.Command {
	var (
		port      string
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API. Settings come from the environment (PORT, LOG_LEVEL,
LOG_FORMAT, CORS_ALLOW_ORIGINS, VIGENERE_*); flags override them.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting Vigenère API",
				zap.String("address", cfg.Address()),
				zap.Strings("allow_origins", cfg.AllowOrigins),
				zap.Bool("fold_diacritics", cfg.FoldDiacritics),
				zap.Strings("endpoints", []string{
					"GET  /",
					"GET  /api/health",
					"POST /api/vigenere/cifrar",
					"POST /api/vigenere/descifrar",
				}),
			)

			gin.SetMode(cfg.GinMode)
			srv := server.New(cfg, server.NewRouter(cfg, logger), logger)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", config.DefaultPort, "listen port")
	cmd.Flags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	cmd.Flags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "json or console")

	return cmd
}
