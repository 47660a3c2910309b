package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "tourmesh",
	Short:   "Lagos Detty-December trip-planning advisor",
	Version: version,
	Long: `tourmesh is a conversational trip-planning advisor for Lagos.

A team of specialist delegates (tourism advisor, safety guide, booking
assistant) answers traveler questions over a shared tourist profile.

Examples:
  tourmesh chat --user traveler-1
  tourmesh serve --addr 127.0.0.1:8080
  tourmesh eval --output results.json`,
}

func init() {
	rootCmd.PersistentFlags().String("provider", "anthropic", "model provider (anthropic, openai, mock)")
	rootCmd.PersistentFlags().String("model", "", "model name (provider default if empty)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(evalCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
