package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"seances/internal/showtimes"
	"seances/internal/weekly"
)

var (
	concurrentFlag int
	fromFlag       string
	toFlag         string
	versionsFlag   bool
	detailFlag     bool
)

var programmeCmd = &cobra.Command{
	Use:   "programme FILE",
	Short: "Print the compact weekly programme of every movie",
	Long: `Prints, for each cinema of FILE, one line per movie with its compact
weekly programme, e.g.

  Dune [2h45] : 14h, 17h30 (sf Sam, Dim), 21h

Movies whose showtimes do not fit in one exhibition week are reported
without a programme. --du/--au keep a date window, which is the usual way
to bring a longer listing back to one week.`,
	Args: cobra.ExactArgs(1),
	RunE: runProgramme,
}

func init() {
	programmeCmd.Flags().IntVar(&concurrentFlag, "concurrence", 4, "Cinemas compacted in parallel")
	programmeCmd.Flags().StringVar(&fromFlag, "du", "", "Ignore showtimes before this day (DD/MM/YYYY or YYYY-MM-DD)")
	programmeCmd.Flags().StringVar(&toFlag, "au", "", "Ignore showtimes after this day (DD/MM/YYYY or YYYY-MM-DD)")
	programmeCmd.Flags().BoolVar(&versionsFlag, "versions", false, "One programme per language and screen format")
	programmeCmd.Flags().BoolVar(&detailFlag, "detail", false, "Print the hours of each day under the programme")
}

func runProgramme(cmd *cobra.Command, args []string) error {
	from, to, err := showtimes.ParseWindow(fromFlag, toFlag, cfg.Location)
	if err != nil {
		return err
	}
	cinemas, err := loadCinemas(args[0], cfg.Location)
	if err != nil {
		return err
	}
	for _, c := range cinemas {
		c.Filter(from, to)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	programs, err := showtimes.ProgramAll(ctx, cfg.Compactor(), cinemas, concurrentFlag, versionsFlag)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	for i, cp := range programs {
		c := cp.Cinema
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s (%s)\n", c.Name, c.ID)
		for _, p := range cp.Programs {
			title := p.Movie.Title
			if p.Version != "" {
				title += " " + p.Version
			}
			if p.Err != nil {
				log.Warn().Err(p.Err).Str("cinema", c.ID).Str("movie", title).Msg("programme not compacted")
				fmt.Fprintf(out, "  %s [%s] : %v\n", title, p.Movie.DurationShort(), p.Err)
			} else {
				fmt.Fprintf(out, "  %s [%s] : %s\n", title, p.Movie.DurationShort(), p.Program)
			}
			if detailFlag {
				for _, g := range p.Days {
					fmt.Fprintf(out, "      %s : %s\n", shortDays(g.Days), g.Hours)
				}
			}
		}
	}
	return nil
}

// shortDays renders "Mer 3, Jeu 4".
func shortDays(days []time.Time) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, fmt.Sprintf("%s %d", weekly.WeekdayOf(d).Short(), d.Day()))
	}
	return strings.Join(parts, ", ")
}
