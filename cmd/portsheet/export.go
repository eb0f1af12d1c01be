package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/portsheet-go/pkg/portsheet"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/export"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/loader"
)

var (
	verbose     bool
	outputPath  string
	format      string
	byRow       bool
	skipRows    int
	skipCols    int
	pretty      bool
	watch       bool
	metricsFile string
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [definition]",
		Short: "Export a sheet definition",
		Long: `Export a sheet definition file. Settings under the definition's "export"
block are applied first; flags given on the command line override them.`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}
	formats := make([]string, len(portsheet.Formats))
	for i, f := range portsheet.Formats {
		formats[i] = string(f)
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: "+strings.Join(formats, ", "))
	cmd.Flags().BoolVar(&byRow, "by-row", true, "Use rows as the outer key of documents")
	cmd.Flags().IntVar(&skipRows, "skip-rows", 0, "Number of leading rows to leave out")
	cmd.Flags().IntVar(&skipCols, "skip-cols", 0, "Number of leading columns to leave out")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Export again whenever the definition changes")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write export metrics in Prometheus text format to this file")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	defPath := args[0]
	if _, err := os.Stat(defPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", defPath)
	}

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	override, err := flagOverrides(cmd)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	cfg := export.Config{
		Warn:    export.LogSink(logger),
		Metrics: export.NewMetrics(reg),
	}

	exportOnce := func() error {
		data, err := portsheet.ExportDefinition(defPath, outputPath, portsheet.DefaultOptions(), override, cfg)
		if err != nil {
			return err
		}
		if outputPath != "" {
			logger.Info("Exported", "definition", defPath, "output", outputPath)
		} else if err := writeStdout(cmd.OutOrStdout(), data); err != nil {
			return err
		}
		if metricsFile != "" {
			if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
				return fmt.Errorf("failed to write metrics: %w", err)
			}
			logger.Debug("Wrote metrics", "path", metricsFile)
		}
		return nil
	}

	if err := exportOnce(); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if !watch {
		return nil
	}
	return loader.Watch(cmd.Context(), defPath, loader.DefaultDebounce, logger, exportOnce)
}

// flagOverrides returns the options set explicitly on the command line.
func flagOverrides(cmd *cobra.Command) (func(*portsheet.Options), error) {
	var f portsheet.Format
	if format != "" {
		parsed, err := portsheet.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		f = parsed
	}
	flags := cmd.Flags()
	return func(o *portsheet.Options) {
		if f != "" {
			o.Format = f
		}
		if flags.Changed("by-row") {
			v := byRow
			o.ByRow = &v
		}
		if flags.Changed("skip-rows") {
			o.Offset.Rows = skipRows
		}
		if flags.Changed("skip-cols") {
			o.Offset.Columns = skipCols
		}
		if pretty {
			o.Pretty = true
		}
	}, nil
}

func writeStdout(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
