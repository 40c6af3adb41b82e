package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/yacoob/aib2ofx/pkg/config"
	"github.com/yacoob/aib2ofx/pkg/export"
	"github.com/yacoob/aib2ofx/pkg/output"
	"github.com/yacoob/aib2ofx/pkg/server"
	"github.com/yacoob/aib2ofx/pkg/store"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "aib2ofx",
	Short: "Convert AIB internet-banking statements to OFX or CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <statement.html>",
	Short: "Convert a saved statement page to OFX or CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		html, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading statement page: %w", err)
		}

		balances, err := store.NewFileStore(cfg.BalancesFile)
		if err != nil {
			return err
		}
		exporter := export.New(logger, cfg, balances)

		statement, err := exporter.Parse(html)
		if err != nil {
			return err
		}
		if debug {
			logger.Debug("parsed statement\n" + pp.Sprint(statement))
		}

		formatName, _ := cmd.Flags().GetString("format")
		rendered, err := exporter.Render(statement, formatName)
		if err != nil {
			return err
		}

		if asDataURI, _ := cmd.Flags().GetBool("data-uri"); asDataURI {
			rendered = []byte(output.DataURI(rendered) + "\n")
		}

		outPath, _ := cmd.Flags().GetString("output")
		return output.Write(outPath, rendered)
	},
}

var balancesCmd = &cobra.Command{
	Use:   "balances <overview.html>",
	Short: "Capture available balances from a saved accounts overview page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		html, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading overview page: %w", err)
		}

		balances, err := store.NewFileStore(cfg.BalancesFile)
		if err != nil {
			return err
		}
		exporter := export.New(logger, cfg, balances)

		captured, err := exporter.CaptureBalances(html)
		if err != nil {
			return err
		}
		logger.Info("balances captured", "accounts", captured, "file", cfg.BalancesFile)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP conversion server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger()

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		balances, err := store.NewFileStore(cfg.BalancesFile)
		if err != nil {
			return err
		}
		exporter := export.New(logger, cfg, balances)

		return server.New(logger, exporter).Start(cfg.Addr)
	},
}

func newLogger() *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "aib2ofx",
		Level:           level,
	})
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is aib2ofx.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	convertCmd.Flags().StringP("format", "f", export.FormatOFX, "Output format (ofx|csv)")
	convertCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().Bool("data-uri", false, "Emit a base64 data URI instead of the raw document")

	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(balancesCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	_ = gotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
