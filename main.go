package main

import (
	"context"
	"fmt"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"io"
	"net/http"
	"os"
	"post_bot/dal"
	"post_bot/logic"
	"post_bot/server"
	"post_bot/shared"
	"post_bot/texts"
)

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v", err)
}

var logger *log.Logger

var rootCmd = &cobra.Command{
	Use:   "post_bot",
	Short: "Headless LinkedIn Post Bot service",
	Long:  `post_bot scans developer activity, drafts LinkedIn posts from it through the Post Bot backend, and publishes them. It serves a JSON API for interactive sessions and can run unattended on a schedule.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// CONFIG and SECRETS may come from a .env file; a missing file is fine
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service and the autopilot schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Providers shared by the service and the one-shot commands.
func coreProviders(cfg *shared.Config) fx.Option {
	provideConfig := func() *shared.Config {
		return cfg
	}
	provideLogger := func() shared.ILogger {
		return logger
	}
	return fx.Provide(
		provideConfig,
		provideLogger,
		shared.NewUserAgent,
		logic.NewMetrics,
		logic.NewBackendClient,
		logic.NewSessionManager,
		logic.NewBotDirectory,
		logic.NewAutopilot,
		texts.NewTexts,
		dal.NewRepo,
	)
}

func runServe() error {

	cfg := shared.LoadConfig()
	logger = initLogger(cfg)

	app := fx.New(
		fx.NopLogger,
		coreProviders(cfg),
		fx.Provide(
			server.NewHTTPServer,
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
			asHandlerGroupDef(server.NewBotHandlerGroup),
			asHandlerGroupDef(server.NewStyleHandlerGroup),
			asHandlerGroupDef(server.NewSessionHandlerGroup),
			asHandlerGroupDef(server.NewStatusHandlerGroup),
			asHandlerGroupDef(server.NewMetricsHandlerGroup),
		),
		fx.Invoke(
			func(repo dal.IRepo) { repo.InitUpdateDb() },
			registerHooks,
			func(*http.Server) {},
		),
		fx.ErrorHook(&initErrorHandler{}),
	)
	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}

func asHandlerGroupDef(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.IHandlerGroup)),
		fx.ResultTags(`group:"handler_group"`),
	)
}

func initLogger(cfg *shared.Config) *log.Logger {

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		msg := fmt.Sprintf("Failed to open log file '%v': %v", cfg.LogFile, err)
		log.Fatal(msg)
	}

	logger := log.New(io.MultiWriter(os.Stdout, logFile))
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat("2006-01-02 15:04:05.000")
	switch cfg.LogLevel {
	case "Debug":
		logger.SetLevel(log.DebugLevel)
	case "Info":
		logger.SetLevel(log.InfoLevel)
	case "Warn":
		logger.SetLevel(log.WarnLevel)
	case "Error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.ErrorLevel)
	}
	logger.SetReportCaller(true)

	return logger
}

func registerHooks(lc fx.Lifecycle, metrics logic.IMetrics, autopilot logic.IAutopilot) {
	lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				logger.Printf("Application starting up")
				metrics.ServiceStarted()
				return autopilot.Start()
			},
			OnStop: func(context.Context) error {
				logger.Printf("Application shutting down")
				autopilot.Stop()
				return nil
			},
		},
	)
}
