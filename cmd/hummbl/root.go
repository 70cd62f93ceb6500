package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	hummbl "github.com/hummbl-dev/hummbl-prototype"
)

var rootCmd = &cobra.Command{
	Use:   "hummbl",
	Short: "Decompose problem statements into structured components",
	Long: `hummbl runs the HUMMBL decomposition operator: it breaks a free-text
problem statement into typed components, infers dependency and
parallelism relationships, computes complexity and confidence
estimates, and reports the reasoning behind every decision.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/hummbl/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME/.config/hummbl")
		viper.AddConfigPath(".")
	}

	def := hummbl.DefaultConfig()
	viper.SetDefault("token_gap_threshold", def.TokenGapThreshold)
	viper.SetDefault("low_confidence_threshold", def.LowConfidenceThreshold)
	viper.SetDefault("max_input_bytes", def.MaxInputBytes)

	viper.AutomaticEnv()
	viper.SetEnvPrefix("HUMMBL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()

	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// operatorConfig builds the engine configuration from viper state.
func operatorConfig() hummbl.Config {
	cfg := hummbl.DefaultConfig()
	cfg.TokenGapThreshold = viper.GetInt("token_gap_threshold")
	cfg.LowConfidenceThreshold = viper.GetFloat64("low_confidence_threshold")
	cfg.MaxInputBytes = viper.GetInt("max_input_bytes")
	return cfg
}
