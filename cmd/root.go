package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "rekon [filename]",
		Short: "Reconstructs and verifies Indonesian bank statement PDFs",
		Long: `rekon extracts account metadata and transaction tables out of
rekening koran PDFs, repairing the smashed text that PDF extraction
produces, and cross-checks the result against the statement's own
turnover totals.`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				viper.Set("target", args[0])
				runParse(parseCmd, []string{})
				return
			}
			cmd.Help()
		},
	}
)

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default is ./.rekon.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initLogging() {
	if !verbose {
		log.SetOutput(io.Discard)
	} else {
		log.SetFlags(log.Ltime | log.Lmsgprefix)
		log.SetPrefix("INFO: ")
	}
}

func initConfig() {
	// Defaults underlie any config file: a partial .rekon.yaml only
	// overrides the keys it names.
	viper.SetDefault("backend", "ledongthuc")
	viper.SetDefault("source_dir", "")
	viper.SetDefault("output_dir", "output")
	viper.SetDefault("workers", 0)
	viper.SetDefault("tolerance", "0.01")
	viper.SetDefault("verify_turnover", false)

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory and home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".rekon")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	viper.BindEnv("source_dir", "SOURCE_PDF_DIR")
	viper.BindEnv("output_dir", "OUTPUT_DIR")
	viper.BindEnv("verify_turnover", "VERIFY_TURNOVER")

	if err := viper.ReadInConfig(); err != nil {
		// Running without a config file is fine; the defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
}
