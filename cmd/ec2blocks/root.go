package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reglet-dev/ec2blocks/internal/infrastructure/redaction"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/system"
)

var cfgFile string

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "ec2blocks",
	Short: "Declarative EC2 networking operations",
	Long: `ec2blocks invokes EC2 networking operations (transit gateways, route
tables, NAT gateways, Elastic IPs) from declarative config blocks. Each call
emits one structured event, with success payloads passed through as the
service returned them and failures classified by kind.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ec2blocks.yaml)")
}

// initConfig loads configuration from the config file and environment.
func initConfig() {
	system.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ec2blocks")
	}

	viper.SetEnvPrefix("EC2BLOCKS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

// newLogger builds the CLI logger. Everything it writes passes through the
// redactor first.
func newLogger(w io.Writer, redactor *redaction.Redactor, opts *CommonOptions) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case opts.Verbose:
		level = slog.LevelDebug
	case opts.Quiet:
		level = slog.LevelError
	}

	// Using TextHandler for CLI friendliness
	return slog.New(slog.NewTextHandler(redaction.NewWriter(w, redactor), &slog.HandlerOptions{
		Level: level,
	}))
}
