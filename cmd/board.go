package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/White-On/transilien-bot/pkg/config"
	"github.com/White-On/transilien-bot/pkg/exporter"
	"github.com/White-On/transilien-bot/pkg/notify"
	"github.com/White-On/transilien-bot/pkg/prim"
	"github.com/White-On/transilien-bot/pkg/sncf"
	"github.com/White-On/transilien-bot/pkg/transit"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallbacks when neither flags nor the saved config specify a board.
const (
	defaultSource      = "sncf"
	defaultStation     = "stop_area:SNCF:87386649" // Ermont Eaubonne
	defaultDestination = "Paris Saint-Lazare (Paris)"
)

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	station, _ := cmd.Flags().GetString("station")
	destination, _ := cmd.Flags().GetString("destination")
	sourceName, _ := cmd.Flags().GetString("source")
	count, _ := cmd.Flags().GetInt("count")
	sendNotify, _ := cmd.Flags().GetBool("notify")
	exportBoard, _ := cmd.Flags().GetBool("export")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	if station == "" {
		station = cfg.StationID
	}
	if station == "" {
		station = defaultStation
	}
	if destination == "" {
		destination = cfg.Destination
	}
	if destination == "" {
		destination = defaultDestination
	}
	if sourceName == "" {
		sourceName = cfg.Source
	}
	if sourceName == "" {
		sourceName = defaultSource
	}

	excluded := map[string]bool{"Bus": true}
	if len(cfg.ExcludedModes) > 0 {
		excluded = map[string]bool{}
		for _, mode := range cfg.ExcludedModes {
			excluded[mode] = true
		}
	}

	// Validate every credential the run will need before touching the network
	creds := config.LoadCredentials()
	apiKey, err := creds.APIKeyFor(sourceName)
	if err != nil {
		return err
	}
	if sendNotify {
		if err := creds.RequireSlack(); err != nil {
			return err
		}
	}

	var source transit.Source
	switch sourceName {
	case "prim":
		source = prim.NewClient(apiKey, timeout)
	default:
		source = sncf.NewClient(apiKey, timeout)
	}

	var deps []transit.Departure
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching live departures for %s...", station)).
		Action(func() {
			deps, fetchErr = source.Departures(station, count)
		}).
		Run()

	if fetchErr != nil {
		var malformed *transit.MalformedTimestampError
		if errors.As(fetchErr, &malformed) && len(deps) > 0 {
			// Tolerant feed skipped a visit it could not time; show the rest
			fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("⚠️ Skipped departures with unreadable times: %v", fetchErr)))
		} else {
			return fetchErr
		}
	}

	board := transit.SortBoard(deps)
	filtered := transit.FilterByDestination(board, destination, excluded)

	fmt.Printf("\n--- 🚆 Next Departures: %s ---\n", accentStyle.Render(station))

	if len(board) == 0 {
		fmt.Println("No upcoming departures found.")
		return nil
	}

	for _, d := range board {
		fmt.Println(styleFor(d.Status).Render(transit.RenderLine(d)))
	}

	titler := cases.Title(language.French)
	fmt.Printf("\n%s %d\n",
		accentStyle.Bold(true).Render(fmt.Sprintf("Number of Trains to %s:", titler.String(destination))),
		len(filtered))

	if exportBoard {
		if err := exportBoardICS(board, station); err != nil {
			return err
		}
	}

	if sendNotify {
		notifyBoard(creds, board, station, destination, len(filtered))
	}

	return nil
}

func styleFor(s transit.Status) lipgloss.Style {
	switch s {
	case transit.StatusCancelled:
		return cancelledStyle
	case transit.StatusDelayed:
		return delayedStyle
	default:
		return onTimeStyle
	}
}

// notifyBoard sends the plain-text report to Slack. Delivery failures are
// reported but never fatal: the console output above already completed.
func notifyBoard(creds config.Credentials, board []transit.Departure, station, destination string, matching int) {
	var report strings.Builder
	fmt.Fprintf(&report, "Next departures at %s\n\n", station)
	report.WriteString(transit.RenderBoard(board))
	fmt.Fprintf(&report, "\n\nNumber of trains to %s: %d", destination, matching)

	notifier := notify.NewSlack(creds.SlackToken, creds.SlackChannel)
	if err := notifier.Notify(report.String()); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("❌ Slack delivery failed: %v", err)))
		return
	}

	fmt.Println(accentStyle.Render("✨ Board sent to Slack"))
}

func exportBoardICS(board []transit.Departure, station string) error {
	filename := fmt.Sprintf("departures_%s.ics", strings.ReplaceAll(station, ":", "-"))

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create ics file: %w", err)
	}
	defer f.Close()

	if err := exporter.GenerateICS(board, station, f); err != nil {
		return fmt.Errorf("could not write ics file: %w", err)
	}

	fmt.Printf("✨ Successfully exported departure board to: %s\n", filename)
	return nil
}
