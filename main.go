package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gigbook/gig-import/cmd/batches"
	"gigbook/gig-import/cmd/commit"
	"gigbook/gig-import/cmd/preview"
	"gigbook/gig-import/cmd/root"
	"gigbook/gig-import/cmd/undo"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is created
	configureLogLevelDirectly()

	// 3. Initialize root command and flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(preview.Cmd)
	root.Cmd.AddCommand(commit.Cmd)
	root.Cmd.AddCommand(undo.Cmd)
	root.Cmd.AddCommand(batches.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global logrus level from LOG_LEVEL
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
