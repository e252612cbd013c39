package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fjacquet/proposal-search/cmd/categories"
	"fjacquet/proposal-search/cmd/keyword"
	"fjacquet/proposal-search/cmd/menu"
	"fjacquet/proposal-search/cmd/root"
	"fjacquet/proposal-search/cmd/search"
	"fjacquet/proposal-search/cmd/values"
	"fjacquet/proposal-search/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// .env is loaded before anything reads the environment
	_, _ = config.LoadEnv()

	configureLogLevel()

	root.Init()

	root.Cmd.AddCommand(search.Cmd)
	root.Cmd.AddCommand(keyword.Cmd)
	root.Cmd.AddCommand(values.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(menu.Cmd)
}

// configureLogLevel applies LOG_LEVEL to the global logrus logger and, unless
// PROPSEARCH_LOG_LEVEL is set, to the application configuration.
func configureLogLevel() {
	levelStr := strings.ToLower(config.GetEnv("LOG_LEVEL", "info"))
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if _, set := os.LookupEnv(config.EnvPrefix + "_LOG_LEVEL"); !set {
		_ = os.Setenv(config.EnvPrefix+"_LOG_LEVEL", level.String())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
