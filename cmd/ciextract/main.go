// Package main provides the CLI entry point for ciextract.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/ciextract-go/internal/config"
	"github.com/ukaji3/ciextract-go/internal/logging"
	"github.com/ukaji3/ciextract-go/internal/web"
	"github.com/ukaji3/ciextract-go/pkg/ciextract"
	"github.com/ukaji3/ciextract-go/pkg/ciextract/models"
	"github.com/ukaji3/ciextract-go/pkg/ciextract/output"
	"github.com/ukaji3/ciextract-go/pkg/ciextract/render"
	"go.uber.org/zap"
)

var (
	configPath string
	sourcePath string
	sheetName  string
	verbose    bool

	functionName string
	stageNames   []string
	format       string
	outputPath   string
	pretty       bool
	addr         string

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ciextract",
		Short: "Extract document status rows from a CI extraction workbook",
		Long: `ciextract finds the documents of a function in a CI extraction workbook
whose selected stage columns carry a DR, D, U or X,D marker, and renders
them as a table with colored status indicators.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "ciextract.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&sourcePath, "source", "s", "", "Workbook path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Worksheet name (default: first sheet)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "List matching documents for a function and stages",
		Args:  cobra.NoArgs,
		RunE:  runQuery,
	}
	queryCmd.Flags().StringVarP(&functionName, "function", "f", "", "Function name")
	queryCmd.Flags().StringArrayVar(&stageNames, "stage", nil, "Stage name (repeatable)")
	queryCmd.Flags().StringVar(&format, "format", "text", "Output format: text, html, json")
	queryCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	queryCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	functionsCmd := &cobra.Command{
		Use:   "functions",
		Short: "List function names",
		Args:  cobra.NoArgs,
		RunE:  runFunctions,
	}

	stagesCmd := &cobra.Command{
		Use:   "stages",
		Short: "List stage names",
		Args:  cobra.NoArgs,
		RunE:  runStages,
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show the populated range of the workbook",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the extraction form over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	rootCmd.AddCommand(queryCmd, functionsCmd, stagesCmd, infoCmd, serveCmd)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if sourcePath != "" {
		cfg.Source.Path = sourcePath
	}
	if sheetName != "" {
		cfg.Source.Sheet = sheetName
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	return err
}

// openService loads the configured workbook once for the command.
func openService() *ciextract.Service {
	return ciextract.Open(cfg.Source.Path, ciextract.Options{
		Sheet:  cfg.Source.Sheet,
		Layout: cfg.SheetLayout(),
		Logger: logger,
	})
}

func runQuery(cmd *cobra.Command, args []string) error {
	if functionName == "" || len(stageNames) == 0 {
		return errors.New(ciextract.MsgSelectionRequired)
	}

	svc := openService()
	table := svc.Table(functionName, stageNames)

	data, err := formatTable(table)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func formatTable(table models.Table) ([]byte, error) {
	switch format {
	case "text":
		return []byte(render.Text(table)), nil
	case "html":
		var buf bytes.Buffer
		if err := render.HTMLPage(&buf, "Document Extraction Tool", table); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "json":
		data, err := output.ToJSON(&table, pretty)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("invalid format: %s (must be text, html, or json)", format)
	}
}

func runFunctions(cmd *cobra.Command, args []string) error {
	svc := openService()
	if err := svc.Err(); err != nil {
		return err
	}
	// Skip the leading "no selection" entry.
	return printLines(cmd.OutOrStdout(), svc.ListGroupingKeys()[1:])
}

func runStages(cmd *cobra.Command, args []string) error {
	svc := openService()
	if err := svc.Err(); err != nil {
		return err
	}
	return printLines(cmd.OutOrStdout(), svc.ListStageNames())
}

func runInfo(cmd *cobra.Command, args []string) error {
	svc := openService()
	if err := svc.Err(); err != nil {
		return err
	}
	stats := svc.Stats()
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "source: %s\nrange: %s\nrows: %d\ncells: %d\nfunctions: %d\nstages: %d\n",
		svc.Source(), stats.Range, stats.Rows, stats.NonEmpty,
		len(svc.ListGroupingKeys())-1, len(svc.ListStageNames()))
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	if addr != "" {
		cfg.Server.Addr = addr
	}
	svc := openService()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return web.New(svc, logger).ListenAndServe(ctx, cfg.Server.Addr)
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
