package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"seances/internal/showtimes"
)

var (
	dayFlag      string
	weekFlag     bool
	earliestFlag string
	latestFlag   string
	cardFlag     int
)

var dayCmd = &cobra.Command{
	Use:     "day FILE",
	Aliases: []string{"jour"},
	Short:   "List the showings of a day",
	Long: `Lists the showings of FILE for one day (or seven with --semaine), per
cinema and movie version.

  seances day programme.yaml --jour +1 --earliest 18:00 --latest 23:30`,
	Args: cobra.ExactArgs(1),
	RunE: runDay,
}

func init() {
	dayCmd.Flags().StringVar(&dayFlag, "jour", "", "Day as DD/MM/YYYY, YYYY-MM-DD or +N days from today (default: today)")
	dayCmd.Flags().BoolVar(&weekFlag, "semaine", false, "List the next seven days")
	dayCmd.Flags().StringVar(&earliestFlag, "earliest", "", "Only showings starting after HH:MM")
	dayCmd.Flags().StringVar(&latestFlag, "latest", "", "Only showings ending before HH:MM")
	dayCmd.Flags().IntVar(&cardFlag, "carte", 0, "Only cinemas accepting this member card code")
}

func runDay(cmd *cobra.Command, args []string) error {
	days, err := showtimes.ResolveDays(dayFlag, weekFlag, time.Now().In(cfg.Location))
	if err != nil {
		return err
	}
	eligibility, err := showtimes.NewEligibility(earliestFlag, latestFlag)
	if err != nil {
		return err
	}
	cinemas, err := loadCinemas(args[0], cfg.Location)
	if err != nil {
		return err
	}
	printDays(cmd, cinemas, days, eligibility)
	return nil
}

func printDays(cmd *cobra.Command, cinemas []*showtimes.Cinema, days []time.Time, eligibility showtimes.Eligibility) {
	out := cmd.OutOrStdout()
	perCinema := make([][]showtimes.DayShowings, len(cinemas))
	for i, c := range cinemas {
		if cardFlag != 0 && !c.AcceptsCard(cardFlag) {
			log.Debug().Str("cinema", c.ID).Int("card", cardFlag).Msg("cinema skipped, card not accepted")
			continue
		}
		perCinema[i] = showtimes.CollectShowings(c, days, eligibility)
	}

	for d, day := range days {
		if d > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, showtimes.LongDay(day))
		empty := true
		for i, c := range cinemas {
			if perCinema[i] == nil || len(perCinema[i][d].Films) == 0 {
				continue
			}
			empty = false
			fmt.Fprintf(out, "  %s - %s\n", c.Name, c.AddressString())
			for _, film := range perCinema[i][d].Films {
				hours := make([]string, 0, len(film.Showings))
				for _, s := range film.Showings {
					hours = append(hours, s.StartHour)
				}
				fmt.Fprintf(out, "    %s (%s) %s : %s\n", film.Title, film.Version, film.Duration, strings.Join(hours, ", "))
			}
		}
		if empty {
			fmt.Fprintln(out, "  aucune séance")
		}
	}
}
