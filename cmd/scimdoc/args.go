package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// arguments mirrors the Logging args block a SCIM server command takes,
// minus everything that names a transport or a database this tool never
// touches.
type arguments struct {
	LogLevel   string
	SchemaPath string
	JSONSchema bool
	Format     string
}

func (arg *arguments) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Specify logger output level to `[INFO|ERROR|DEBUG|WARN|FATAL]`. Value defaults `INFO`",
			EnvVars:     []string{"LOG_LEVEL"},
			Value:       "INFO",
			Destination: &arg.LogLevel,
		},
		&cli.BoolFlag{
			Name:        "json-schema",
			Usage:       "Render the model as a JSON Schema document instead of a descriptor tree",
			Destination: &arg.JSONSchema,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Output format for --json-schema: `[json|yaml]`",
			Value:       "json",
			Destination: &arg.Format,
		},
	}
}

func (arg *arguments) Logger() *zerolog.Logger {
	var level zerolog.Level
	switch arg.LogLevel {
	case "INFO":
		level = zerolog.InfoLevel
	case "ERROR":
		level = zerolog.ErrorLevel
	case "DEBUG":
		level = zerolog.DebugLevel
	case "WARN":
		level = zerolog.WarnLevel
	case "FATAL":
		level = zerolog.FatalLevel
	default:
		level = zerolog.InfoLevel
	}

	l := zerolog.
		New(os.Stderr).
		Level(level).
		With().Timestamp().
		Logger()
	return &l
}
