package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	conditionalget "github.com/always-cache/conditional-get"
	"github.com/always-cache/conditional-get/content"
	"github.com/always-cache/conditional-get/static"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
)

var (
	// CLI flags
	configFlag         string
	portFlag           int
	staticFlag         string
	dbFilenameFlag     string
	verbosityTraceFlag bool
	logFilenameFlag    string

	// this is set by goreleaser
	version string
)

func init() {
	flag.StringVar(&configFlag, "config", "", "YAML config file")
	flag.IntVar(&portFlag, "port", 0, "Port to listen on (overrides config)")
	flag.StringVar(&staticFlag, "static", "", "Directory to serve static files from (overrides config)")
	flag.StringVar(&dbFilenameFlag, "db", "", "Content DB file name (use 'memory' for in-memory db)")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
	flag.StringVar(&logFilenameFlag, "log-file", "", "Log file to use (in addition to stdout)")

	if version == "" {
		version = "DEV"
	}
}

func main() {
	flag.Parse()

	if err := loadEnv(".env"); err != nil {
		log.Fatal().Err(err).Msg("Cannot load environment")
	}
	config, err := getConfig(configFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	config.applyEnv(os.Getenv)
	applyFlags(&config)

	setupLogging(config)

	store, err := openStore(config.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot open content store")
	}

	cg := conditionalget.New(conditionalget.Config{
		Logger: &log.Logger,
		Rules:  config.Rules,
	})

	r := chi.NewRouter()
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(hlog.RequestIDHandler("req_id", "Request-Id"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("Sending response to client")
	}))
	r.Use(cg.Middleware)
	r.Mount(config.StaticPrefix, http.StripPrefix(config.StaticPrefix, static.New(config.StaticRoot)))
	r.Mount(config.ContentPrefix, content.NewHandler(store).Routes())

	log.Info().Msgf("Serving %s on %s%s and content on %s%s",
		config.StaticRoot, config.Listen, config.StaticPrefix, config.Listen, config.ContentPrefix)
	if err := http.ListenAndServe(config.Listen, r); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func applyFlags(config *Config) {
	if portFlag != 0 {
		config.Listen = fmt.Sprintf(":%d", portFlag)
	}
	if staticFlag != "" {
		config.StaticRoot = staticFlag
	}
	if dbFilenameFlag != "" {
		config.DB = dbFilenameFlag
	}
	if logFilenameFlag != "" {
		config.LogFile = logFilenameFlag
	}
	if verbosityTraceFlag {
		config.LogLevel = zerolog.TraceLevel.String()
	}
}

// setupLogging sets up log output to stdout,
// and also to the log file if one is configured.
func setupLogging(config Config) {
	logLevel, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.DebugLevel
	}

	logOutputs := make([]io.Writer, 0)
	logOutputs = append(logOutputs, zerolog.ConsoleWriter{Out: os.Stdout})
	if config.LogFile != "" {
		if logFileOutput, err := os.OpenFile(config.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644); err != nil {
			log.Fatal().Err(err).Msg("Cannot open log file")
		} else {
			logOutputs = append(logOutputs, logFileOutput)
		}
	}
	multiWriter := zerolog.MultiLevelWriter(logOutputs...)
	log.Logger = log.Level(logLevel).Output(multiWriter).
		With().Str("version", version).Logger()
}

// openStore picks the content store: the in-process map when no
// database is configured, SQLite otherwise.
func openStore(db string) (content.Provider, error) {
	if db == "" {
		return content.NewMemStore(), nil
	}
	if db == "memory" {
		db = "file::memory:?cache=shared"
	}
	store, err := content.NewSQLiteStore(db)
	if err != nil {
		return nil, err
	}
	return store, nil
}
