package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/snipkeeper/internal/client/cli"
	"github.com/iudanet/snipkeeper/internal/client/iocli"
	"github.com/iudanet/snipkeeper/internal/config"
	"github.com/iudanet/snipkeeper/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	cfgFile string
	app     *cli.Cli
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "snipkeeper",
		Short:         "SnipKeeper keeps text snippets in sync across folders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsApp(cmd) {
				return nil
			}
			if err := initConfig(); err != nil {
				return err
			}
			return openApp(cmd.Context())
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("SnipKeeper\n")
			fmt.Printf("Version:    %s\n", Version)
			fmt.Printf("Build Date: %s\n", BuildDate)
			fmt.Printf("Git Commit: %s\n", GitCommit)
		},
	})
	rootCmd.AddCommand(cli.Commands(func() *cli.Cli { return app })...)

	setupFlags(rootCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if app != nil {
		if cerr := app.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to close storage: %v\n", cerr)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupFlags(cmd *cobra.Command) {
	config.ApplyClientDefaults(viper.GetViper())
	defaults := config.NewClientViper()

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Path to configuration file")
	flags.String("data-dir", defaults.GetString("data.dir"), "Directory for local databases and the default snippet folder")
	flags.String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")
	flags.String("resolve-mode", defaults.GetString("resolve.mode"), "Default resolve mode (priority, usage_first)")
	flags.String("relay-url", "", "Folder server URL for relay sources")

	bindFlag(cmd, "data.dir", "data-dir")
	bindFlag(cmd, "log.level", "log-level")
	bindFlag(cmd, "resolve.mode", "resolve-mode")
	bindFlag(cmd, "relay.url", "relay-url")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() error {
	if cfgFile != "" {
		return config.ReadClientFile(viper.GetViper(), cfgFile)
	}

	viper.SetConfigName("config")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "snipkeeper"))
	}
	if err := viper.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func openApp(ctx context.Context) error {
	cfg, err := config.LoadClient(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, os.Stderr, false)
	if err != nil {
		return err
	}

	app, err = cli.Open(ctx, cfg, iocli.NewStdio(), logger)
	return err
}

// needsApp version, help и completion работают без хранилищ
func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion", "__complete":
			return false
		}
	}
	return cmd.Runnable()
}
