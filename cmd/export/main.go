// Command export は全銘柄の株式分割データをPolygon APIから取得し、CSVファイルに書き出します。
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"polygon_dashboard/internal/app/di"
	"polygon_dashboard/internal/feature/export/usecase"
	"polygon_dashboard/internal/shared/ratelimiter"
)

// 無料プランのレートリミット（5リクエスト/分）に合わせた既定値。
const (
	defaultRateLimit    = 5
	defaultRateInterval = time.Minute
)

func newRootCmd() *cobra.Command {
	var (
		outDir   string
		limit    int
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all stock split records to a timestamped CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := di.NewPolygonClient()
			limiter := ratelimiter.NewRateLimiter(defaultRateLimit, defaultRateInterval)
			uc := usecase.NewExportUsecase(client, limiter)

			path, err := uc.ExportAll(cmd.Context(), outDir, limit, maxPages)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", ".", "output directory for the CSV file")
	cmd.Flags().IntVar(&limit, "limit", usecase.DefaultPageLimit, "records per page")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "stop after this many pages (0 = all)")

	return cmd
}

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
