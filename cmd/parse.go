package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rekon-id/rekon/extractor"
	"github.com/rekon-id/rekon/extractor/common"
	"github.com/rekon-id/rekon/extractor/rekening_koran"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parses a statement PDF",
	Long: `Parses a single rekening koran PDF and prints the extracted
metadata and transactions as JSON.`,
	Run: runParse,
}

func runParse(cmd *cobra.Command, args []string) {
	target := viper.GetString("target")
	if target == "" {
		log.Fatal("error: no input file given")
	}

	result, err := extractor.ProcessFile(target, viper.GetString("backend"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	out := map[string]any{
		"metadata":     result.Metadata,
		"transactions": result.Transactions,
		"valid":        common.IsValidParse(result.Metadata, result.Transactions),
	}
	if viper.GetBool("verify_turnover") {
		tolerance := rekening_koran.DefaultTolerance
		out["verification"] = rekening_koran.Verify(result.Transactions, tolerance, result.FullText)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("file", "f", "", "Statement PDF to parse")
	parseCmd.Flags().StringP("backend", "b", "", "PDF text backend (ledongthuc, dslipak, unipdf)")
	parseCmd.Flags().Bool("verify", false, "Verify turnover totals against transactions")
	viper.BindPFlag("target", parseCmd.Flags().Lookup("file"))
	viper.BindPFlag("backend", parseCmd.Flags().Lookup("backend"))
	viper.BindPFlag("verify_turnover", parseCmd.Flags().Lookup("verify"))
}
