package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "transilien",
	Short: "A live departure board for Transilien stations",
	Long: `transilien fetches upcoming train departures from the SNCF open API
or the Île-de-France Mobilités PRIM API, prints a delay-annotated board for
your station, and can send it to a Slack channel.`,
	RunE: runBoard,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("station", "s", "", "Station to monitor (stop area or monitoring reference)")
	rootCmd.Flags().StringP("destination", "d", "", "Destination to filter and count trains for")
	rootCmd.Flags().String("source", "", "Departure feed to query: sncf or prim")
	rootCmd.Flags().IntP("count", "n", 10, "Maximum number of departures to request")
	rootCmd.Flags().Bool("notify", false, "Send the rendered board to the configured Slack channel")
	rootCmd.Flags().BoolP("export", "e", false, "Export the board to an .ics calendar file")
	rootCmd.Flags().Duration("timeout", 0, "HTTP timeout for feed requests (default 30s)")
}
