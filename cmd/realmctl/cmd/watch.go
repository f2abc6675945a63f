package cmd

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/realmkeeper/realmkeeper/pkg/notify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the server's change notifications until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		return newClient().Watch(ctx, func(ev notify.Event) {
			ts := ev.Timestamp.Format("15:04:05")
			if ev.Type == notify.EventConnected {
				fmt.Fprintf(out, "%s connected\n", ts)
				return
			}
			fmt.Fprintf(out, "%s changed: %s\n", ts, strings.Join(ev.Keys, " "))
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
