package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rekon-id/rekon/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parses every statement PDF under a directory",
	Long: `Scans a directory recursively for PDF statements, parses them
with a bounded worker pool, writes per-statement CSVs for valid parses,
and prints run metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		sourceDir := viper.GetString("source_dir")
		if len(args) == 1 {
			sourceDir = args[0]
		}
		if sourceDir == "" {
			log.Fatal("error: no source directory given (flag, config or SOURCE_PDF_DIR)")
		}

		outputDir := viper.GetString("output_dir")
		if outputDir != "" {
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				log.Fatalf("error: creating output dir: %v", err)
			}
		}

		tolerance, err := decimal.NewFromString(viper.GetString("tolerance"))
		if err != nil {
			log.Fatalf("error: invalid tolerance: %v", err)
		}

		opts := batch.Options{
			Backend:        viper.GetString("backend"),
			MaxWorkers:     viper.GetInt("workers"),
			OutputDir:      outputDir,
			Tolerance:      tolerance,
			VerifyTurnover: viper.GetBool("verify_turnover"),
		}

		result, err := batch.RunDirectory(sourceDir, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Processed %d files in %s\n", result.Total, result.Duration.Round(time.Millisecond))
		fmt.Printf("  successful: %d\n", result.Successful)
		fmt.Printf("  failed:     %d\n", result.Failed)
		fmt.Printf("  success rate: %.1f%%\n", result.SuccessRate)
		fmt.Printf("  throughput:   %.2f files/sec\n", result.Throughput)

		for _, rec := range result.Records {
			if rec.Error != "" {
				fmt.Printf("  - %s: %s\n", rec.File, rec.Error)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringP("source", "s", "", "Directory to scan for statement PDFs")
	batchCmd.Flags().StringP("output", "o", "", "Directory for per-statement CSV output")
	batchCmd.Flags().IntP("workers", "w", 0, "Worker count (0 = auto, capped at 16)")
	batchCmd.Flags().StringP("backend", "b", "", "PDF text backend")
	batchCmd.Flags().Bool("verify", false, "Verify turnover totals per statement")
	batchCmd.Flags().String("tolerance", "", "Verification tolerance")
	viper.BindPFlag("source_dir", batchCmd.Flags().Lookup("source"))
	viper.BindPFlag("output_dir", batchCmd.Flags().Lookup("output"))
	viper.BindPFlag("workers", batchCmd.Flags().Lookup("workers"))
	viper.BindPFlag("backend", batchCmd.Flags().Lookup("backend"))
	viper.BindPFlag("verify_turnover", batchCmd.Flags().Lookup("verify"))
	viper.BindPFlag("tolerance", batchCmd.Flags().Lookup("tolerance"))
}
