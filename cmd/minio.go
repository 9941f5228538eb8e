package cmd

import (
	"context"
	"fmt"
	"log"

	"AuraFM/config"
	"AuraFM/storage"

	"github.com/spf13/cobra"
)

var minioSession string

var minioCmd = &cobra.Command{
	Use:   "minio",
	Short: "Inspect the snapshot bucket",
	Long:  `Verify the MinIO connection and list the visualizer snapshots stored in the bucket.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		fmt.Printf("MinIO config: %s, bucket: %s\n", cfg.MinioEndpoint, cfg.MinioBucket)

		if err := storage.InitMinio(cfg); err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		fmt.Println("MinIO connection OK.")

		names, err := storage.ListSnapshots(context.Background(), cfg, minioSession)
		if err != nil {
			log.Fatalf("Failed to list snapshots: %v", err)
		}

		if len(names) == 0 {
			fmt.Println("No snapshots stored.")
			return
		}
		for _, name := range names {
			fmt.Println(name)
		}
		fmt.Printf("%d snapshots.\n", len(names))
	},
}

func init() {
	minioCmd.Flags().StringVar(&minioSession, "session", "", "only list snapshots of one visualizer session")
	rootCmd.AddCommand(minioCmd)
}
