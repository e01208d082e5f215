package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todoList/internal/app"
	"todoList/internal/config"
	"todoList/internal/logger"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Task tracker with a console demo and a web UI",
	Long: `todo keeps a list of tasks with a status, a priority and an optional due date.

Storage is selected with storage.type in config.yml or TODO_STORAGE_TYPE:
memory (default), redis, postgres or sqlite.`,
	SilenceUsage: true,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the scripted console walkthrough",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			return a.RunDemo(ctx, cmd.OutOrStdout())
		})
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web UI and the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			return a.Run(ctx)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: ./config.yml or ./configs/config.yml)")
	rootCmd.AddCommand(demoCmd, serveCmd)
}

func withApp(ctx context.Context, run func(context.Context, *app.App) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	a := app.New(cfg)
	defer a.Close()

	if err := a.Init(ctx); err != nil {
		logger.Error("CLI: Initialization failed", err)
		return err
	}
	return run(ctx, a)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
