package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"seances/internal/config"
	"seances/pkg/logger"
)

var (
	logLevel  string
	weekStart string
	timezone  string

	cfg config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seances",
	Short: "Compact weekly cinema programmes",
	Long: `seances reads a programme file (YAML or JSON) listing cinemas and their
showtimes, and prints the compact weekly programme of each movie or the
showings of a given day.

Environment variables (SEANCES_WEEK_START, SEANCES_TIMEZONE, APP_SECRET...)
are read first; flags override them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadFromEnv()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if weekStart != "" {
			day, err := config.ParseWeekday(weekStart)
			if err != nil {
				return err
			}
			cfg.WeekStart = day
		}
		if timezone != "" {
			loc, err := loadLocation(timezone)
			if err != nil {
				return err
			}
			cfg.Timezone, cfg.Location = timezone, loc
		}
		log = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&weekStart, "debut-semaine", "", "First day of the exhibition week (default: SEANCES_WEEK_START or wednesday)")
	rootCmd.PersistentFlags().StringVar(&timezone, "fuseau", "", "Timezone of the showtimes (default: SEANCES_TIMEZONE or Europe/Paris)")

	rootCmd.AddCommand(programmeCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(hashTokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
