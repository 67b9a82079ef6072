package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ariel-frischer/changelog/internal/cli"
	"github.com/ariel-frischer/changelog/internal/config"
)

func main() {
	// Optional; CHANGELOG_* values in .env feed the config env layer.
	_ = godotenv.Load(config.EnvFilePath())

	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
