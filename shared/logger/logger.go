package logger

import (
	"hotel/config"
	"hotel/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a console logger at trace level until the configuration is known.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies the configured level. Outside development, logs are JSON tagged with the
// app name and environment so collectors can index them.
func SetLogLevel(config *config.Config) {
	Configure(config, os.Stdout)
}

func Configure(config *config.Config, out io.Writer) {
	if config.Server.Env != "" && config.Server.Env != constant.ServerEnvDevelopment {
		zerolog.TimeFieldFormat = time.RFC3339
		log.Logger = zerolog.New(out).With().
			Timestamp().
			Str("app", config.App.Name).
			Str("env", config.Server.Env).
			Logger()
	}

	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == "" {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
