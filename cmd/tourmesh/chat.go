package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hupe1980/tourmesh"
	"github.com/hupe1980/tourmesh/driver"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive advisor session on the console",
	Long: `Start an interactive advisor session on the console.

Type your questions at the prompt. "quit" ends the session, "clear"
discards the stored profile and starts fresh.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		m, err := newModel(cmd)
		if err != nil {
			return err
		}

		advisor := tourmesh.NewDefaultAdvisor(m, func(o *tourmesh.Options) {
			o.Logger = logger
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		transport := driver.NewConsoleTransport(os.Stdin, os.Stdout, "You: ")
		transport.Banner()

		session := driver.New(advisor, transport, userID, func(o *driver.Options) {
			o.Logger = logger
		})

		return session.Run(ctx)
	},
}

func init() {
	chatCmd.Flags().String("user", "default_tourist", "user id owning the tourist profile")
}
