package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/campusconnect/campus-events/internal/calendar"
	"github.com/campusconnect/campus-events/internal/config"
	"github.com/campusconnect/campus-events/internal/logging"
	"github.com/campusconnect/campus-events/internal/scraper"
	"github.com/campusconnect/campus-events/internal/server"
	"github.com/campusconnect/campus-events/internal/storage"
	"github.com/campusconnect/campus-events/internal/weather"
)

var (
	flagConfigPath   string
	flagDataFile     string
	flagAcademicURL  string
	flagAthleticsURL string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campus-events",
		Short: "Scrape campus calendars and enrich event dates with forecasts",
		Long: `Collects events from the academic and athletics calendar pages,
stores them append-only, and joins a daily weather forecast onto every
distinct event date.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to YAML config file")
	cmd.PersistentFlags().StringVar(&flagDataFile, "data-file", "", "Path to the JSON data file (overrides config)")
	cmd.PersistentFlags().StringVar(&flagAcademicURL, "academic-url", "", "Academic calendar URL (overrides config)")
	cmd.PersistentFlags().StringVar(&flagAthleticsURL, "athletics-url", "", "Athletics calendar URL (overrides config)")

	cmd.AddCommand(newScrapeCmd(), newEnrichCmd(), newServeCmd(), newExportCmd())
	return cmd
}

// loadConfig resolves config file, env, then command-line flags, in
// ascending precedence.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if flagDataFile != "" {
		cfg.DataFile = flagDataFile
	}
	if flagAcademicURL != "" {
		cfg.AcademicURL = flagAcademicURL
	}
	if flagAthleticsURL != "" {
		cfg.AthleticsURL = flagAthleticsURL
	}
	return cfg, nil
}

func newScrapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scrape",
		Short: "Scrape both calendar pages into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err := logging.New()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer logger.Sync()

			store, err := storage.Open(cfg.DataFile)
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer store.Close()

			inserted := scraper.New(store, logger, cfg.AcademicURL, cfg.AthleticsURL).ScrapeAll()
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d event records\n", inserted)
			return nil
		},
	}
}

func newEnrichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enrich",
		Short: "Fetch one forecast per distinct event date and store the joins",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err := logging.New()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer logger.Sync()

			store, err := storage.Open(cfg.DataFile)
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer store.Close()

			client := weather.NewClient(cfg.WeatherURL, cfg.Latitude, cfg.Longitude, cfg.Timezone)
			written := weather.NewEnricher(store, client, logger).Enrich(context.Background())
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d weather observations\n", written)
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	var flagAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scrape-on-request HTTP routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if flagAddr != "" {
				cfg.ListenAddr = flagAddr
			}
			logger, err := logging.New()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer logger.Sync()

			return server.New(cfg, logger).ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (overrides config)")
	return cmd
}

func newExportCmd() *cobra.Command {
	var flagOut string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored dated events as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := storage.Open(cfg.DataFile)
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			defer store.Close()

			dated := store.ListEventsWithDate()
			exportable := make([]calendar.Exportable, 0, len(dated))
			for _, rec := range dated {
				exportable = append(exportable, calendar.Exportable{
					ID:          rec.ID,
					Title:       rec.Title,
					Date:        rec.Date,
					Time:        rec.Time,
					Location:    rec.Location,
					Description: rec.Description,
					URL:         rec.URL,
				})
			}
			ics := calendar.GenerateICS(exportable)

			if flagOut == "" {
				fmt.Fprint(cmd.OutOrStdout(), ics)
				return nil
			}
			if err := os.WriteFile(flagOut, []byte(ics), 0644); err != nil {
				return fmt.Errorf("writing calendar file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d events to %s\n", len(exportable), flagOut)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagOut, "out", "", "Output .ics path (default: stdout)")
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
