package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "duttmandir/docs" // swagger spec registration
	"duttmandir/internal/handlers"
	"duttmandir/internal/logger"
	"duttmandir/internal/models"
	"duttmandir/internal/repository"
	"duttmandir/internal/repository/db"
	"duttmandir/internal/server"
	"duttmandir/internal/service"

	"github.com/spf13/viper"
)

const defaultFeedTick = 1 * time.Second

func main() {
	// load config.yml first so the log level is configurable
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log.level"))

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database, loadDirectorySeed(log))
	services := service.NewService(repos, service.Options{
		SigningKey:    viper.GetString("auth.signing_key"),
		LoginDelay:    time.Duration(viper.GetInt("auth.login_delay_ms")) * time.Millisecond,
		RegisterDelay: time.Duration(viper.GetInt("auth.register_delay_ms")) * time.Millisecond,
		Log:           log,
	})
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start the live-feed ticker (via composed service)
	go services.Ticker.Run(ctx, defaultFeedTick)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.SetDefault("port", "8080")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("db.path", "duttmandir.db")
	viper.SetDefault("auth.login_delay_ms", 1000)
	viper.SetDefault("auth.register_delay_ms", 1500)

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		// a missing file falls back to defaults; anything else is fatal
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// loadDirectorySeed reads the credential directory override from config.
// An empty or malformed block keeps the compiled-in seed entries.
func loadDirectorySeed(log *logger.Logger) []models.CredentialEntry {
	var entries []models.CredentialEntry
	if err := viper.UnmarshalKey("directory", &entries); err != nil {
		log.Warnw("invalid directory config; using built-in seed", "err", err)
		return nil
	}
	return entries
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "duttmandir.db")
		dbPath = "duttmandir.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
