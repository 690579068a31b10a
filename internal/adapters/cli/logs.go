package cli

import (
	"github.com/spf13/cobra"
)

var followLogs bool

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print the dev container's logs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, cfg, cleanup, err := newLauncher(cmd)
		if err != nil {
			return err
		}
		defer cleanup()
		return l.Logs(cmd.Context(), cfg.AppName, followLogs, cmd.OutOrStdout())
	},
}

func init() {
	logsCmd.Flags().BoolVarP(&followLogs, "follow", "f", false, "stream logs until interrupted")
	rootCmd.AddCommand(logsCmd)
}
