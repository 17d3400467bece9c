package cmd

import (
	"github.com/saulo-duarte/quizgenie-lambda/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "quizgenie",
	Short:         "Mock quiz, summary and chat generation service",
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The Lambda runtime starts the binary without arguments.
		if config.IsLambda() {
			return serveCmd.RunE(cmd, args)
		}
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("functions-url", "", "Base URL of the remote functions (overrides FUNCTIONS_URL)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Pin randomized fields (overrides RANDOM_SEED)")
	rootCmd.PersistentFlags().Bool("latency", true, "Simulate generation latency (overrides SIMULATED_LATENCY)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(titleCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(tokenCmd)
}

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.Load()

	flags := cmd.Flags()
	if flags.Changed("functions-url") {
		cfg.FunctionsURL, _ = flags.GetString("functions-url")
	}
	if flags.Changed("seed") {
		cfg.RandomSeed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("latency") {
		cfg.SimulatedLatency, _ = flags.GetBool("latency")
	}
	return cfg
}
