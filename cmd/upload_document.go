/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tieubaoca/docextractor/config"
)

// uploadDocumentCmd represents the upload-document command
var uploadDocumentCmd = &cobra.Command{
	Use:   "upload-document",
	Short: "Extract and store a single syllabus PDF",
	Long: `Runs the extraction pipeline over one syllabus PDF and stores the result
the same way the upload endpoint does. With --dry-run the extraction is printed
as JSON and nothing is stored.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		reinit, _ := cmd.Flags().GetBool("reinit")

		cfg, err := loadConfig()
		if err != nil {
			newLogger("development").Fatal("Failed to load config", "error", err)
		}
		log := newLogger(cfg.Mode)
		defer log.Sync()

		if filePath == "" {
			log.Fatal("--file is required")
		}
		data, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatal("Failed to read file", "file", filePath, "error", err)
		}

		ctx := context.Background()
		if dryRun {
			// no stores are opened for a dry run
			cfg.Store = config.StoreMemory
			cfg.Redis.Addr = ""
			cfg.WeaviateStoreConfig.Host = ""
			cfg.UploadDir = ""
		}
		a, err := newApp(ctx, cfg, log)
		if err != nil {
			log.Fatal("Failed to initialize", "error", err)
		}
		defer a.Close(ctx)

		if dryRun {
			extraction, err := a.service.Extract(filepath.Base(filePath), data)
			if err != nil {
				log.Fatal("Extraction failed", "file", filePath, "error", err)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(extraction); err != nil {
				log.Fatal("Failed to encode extraction", "error", err)
			}
			return
		}

		if reinit {
			if a.index == nil {
				log.Fatal("--reinit needs weaviate_store_config.host")
			}
			if err := a.index.ReInit(ctx); err != nil {
				log.Fatal("Failed to reinitialize topic index", "error", err)
			}
		}

		res, err := a.service.Ingest(ctx, filepath.Base(filePath), data)
		if err != nil {
			log.Fatal("Upload failed", "file", filePath, "error", err)
		}
		log.Info("Uploaded syllabus", "course_code", res.CourseCode, "units", res.Units)
	},
}

func init() {
	rootCmd.AddCommand(uploadDocumentCmd)

	uploadDocumentCmd.Flags().StringP("file", "f", "", "Path to the file to upload")
	uploadDocumentCmd.Flags().Bool("dry-run", false, "Print the extraction instead of storing it")
	uploadDocumentCmd.Flags().BoolP("reinit", "r", false, "Recreate the topic index before uploading")
}
