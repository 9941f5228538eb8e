package cmd

import (
	"fmt"
	"log"

	"AuraFM/config"
	"AuraFM/db"
	"AuraFM/ingest"
	"AuraFM/model"
	"AuraFM/repository"

	"github.com/spf13/cobra"
)

var loadCSVPath string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the track library CSV into MySQL",
	Long:  `Parse the library CSV, normalize every audio feature field and upsert the tracks into MySQL. Re-running with the same file is idempotent.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		path := loadCSVPath
		if path == "" {
			path = cfg.LibraryCSV
		}

		fmt.Printf("Loading library from %s...\n", path)
		tracks, err := ingest.LoadCSV(path)
		if err != nil {
			log.Fatalf("Failed to parse library CSV: %v", err)
		}
		fmt.Printf("Parsed %d tracks.\n", len(tracks))

		if err := db.ConnectGormDB(cfg); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.CloseGormDB()

		if err := db.AutoMigrateModels(&model.Track{}); err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		repo := repository.NewGormTrackRepository(db.GormDB)
		if err := repo.UpsertTracks(tracks); err != nil {
			log.Fatalf("Failed to upsert tracks: %v", err)
		}

		count, err := repo.CountTracks()
		if err != nil {
			log.Fatalf("Failed to count tracks: %v", err)
		}
		fmt.Printf("Library loaded, %d tracks in database.\n", count)
	},
}

func init() {
	loadCmd.Flags().StringVar(&loadCSVPath, "csv", "", "path to the library CSV (defaults to LIBRARY_CSV)")
	rootCmd.AddCommand(loadCmd)
}
