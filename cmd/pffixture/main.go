package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/redhatqe/patternfly-go/internal/config"
	"github.com/redhatqe/patternfly-go/internal/fixture"
)

var version = "0.1.0"

// buildServerDependencies creates all dependencies needed for the fixture server
func buildServerDependencies(log zerolog.Logger) (fixture.ServerDependencies, error) {
	var deps fixture.ServerDependencies
	deps.Logger = log

	fileConfig, err := config.LoadFileConfig()
	if err != nil {
		return deps, fmt.Errorf("failed to load fixture config: %w", err)
	}
	deps.ServerConfig = config.LoadServerConfig(fileConfig)

	return deps, nil
}

// ServeCommand returns the serve command
func ServeCommand(log zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the widget fixture web server",
		Action: func(c *cli.Context) error {
			deps, err := buildServerDependencies(log)
			if err != nil {
				return err
			}
			return fixture.RunServe(deps)
		},
	}
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "pffixture",
		Usage:   "Widget library fixture management tool",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal().Err(err).Msg("command failed")
	}
}
