/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tieubaoca/docextractor/logger"
	"github.com/tieubaoca/docextractor/service"
	"github.com/tieubaoca/docextractor/utils"
)

// batchUploadDocumentCmd represents the batch-upload-document command
var batchUploadDocumentCmd = &cobra.Command{
	Use:   "batch-upload-document",
	Short: "Extract and store every syllabus PDF in a directory",
	Long: `Uploads every .pdf file of a directory with a bounded number of workers.
A file that fails is logged and skipped; the command exits non-zero when any
file failed.`,
	Run: func(cmd *cobra.Command, args []string) {
		directory, _ := cmd.Flags().GetString("directory")
		workers, _ := cmd.Flags().GetInt("workers")
		reinit, _ := cmd.Flags().GetBool("reinit")

		if code := runBatchUpload(directory, workers, reinit); code != 0 {
			os.Exit(code)
		}
	},
}

// runBatchUpload returns the process exit code. It returns instead of
// exiting so the stores are closed and the log is flushed first.
func runBatchUpload(directory string, workers int, reinit bool) int {
	cfg, err := loadConfig()
	if err != nil {
		newLogger("development").Error("Failed to load config", "error", err)
		return 1
	}
	log := newLogger(cfg.Mode)
	defer log.Sync()

	files, err := utils.ListFilesWithExt(directory, ".pdf")
	if err != nil {
		log.Error("Failed to list documents", "directory", directory, "error", err)
		return 1
	}

	ctx := context.Background()
	a, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to initialize", "error", err)
		return 1
	}
	defer a.Close(ctx)

	if reinit {
		if a.index == nil {
			log.Error("--reinit needs weaviate_store_config.host")
			return 1
		}
		if err := a.index.ReInit(ctx); err != nil {
			log.Error("Failed to reinitialize topic index", "error", err)
			return 1
		}
	}

	failed := uploadAll(ctx, a.service, log, files, workers)
	log.Info("Batch upload finished", "files", len(files), "failed", failed)
	if failed > 0 {
		return 1
	}
	return 0
}

func init() {
	rootCmd.AddCommand(batchUploadDocumentCmd)

	batchUploadDocumentCmd.Flags().String("directory", "", "Path to the dir to upload")
	batchUploadDocumentCmd.Flags().IntP("workers", "w", 4, "Number of files processed concurrently")
	batchUploadDocumentCmd.Flags().BoolP("reinit", "r", false, "Recreate the topic index before uploading")
}

// uploadAll ingests files with at most workers in flight and returns the
// number of files that failed.
func uploadAll(ctx context.Context, svc *service.SyllabusService, log *logger.Logger, files []string, workers int) int {
	if workers < 1 {
		workers = 1
	}
	var failed atomic.Int32

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, filePath := range files {
		filePath := filePath
		g.Go(func() error {
			data, err := os.ReadFile(filePath)
			if err != nil {
				log.Error("Failed to read document", "file", filePath, "error", err)
				failed.Add(1)
				return nil
			}
			res, err := svc.Ingest(ctx, filepath.Base(filePath), data)
			if err != nil {
				log.Error("Failed to upload document", "file", filePath, "error", err)
				failed.Add(1)
				return nil
			}
			log.Info("Uploaded document", "file", filePath, "course_code", res.CourseCode)
			return nil
		})
	}
	_ = g.Wait()
	return int(failed.Load())
}
