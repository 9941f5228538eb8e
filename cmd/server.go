package cmd

import (
	"AuraFM/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the AuraFM server",
	Long:  `Start the AuraFM HTTP server: search API, track listing and the WebSocket visualizer stream.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
