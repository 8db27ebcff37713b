package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-tabular/pkg/tabular"
)

// tableJSON is the JSON shape of a decoded table.
type tableJSON struct {
	Columns []string         `json:"columns"`
	Records []tabular.Record `json:"records"`
}

func newDecodeCmd(a *app) *cobra.Command {
	var (
		outputPath string
		format     string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "decode [input.csv]",
		Short: "Decode a file and print its records as JSON or normalized CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			if !cmd.Flags().Changed("pretty") {
				pretty = a.cfg.Output.Pretty
			}

			table, err := a.loadTable(cmd, args[0])
			if err != nil {
				return err
			}

			data, err := encodeTable(table, format, pretty)
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				a.logger.DebugContext(cmd.Context(), "wrote output", "path", outputPath, "bytes", len(data))
				return nil
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, csv")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func encodeTable(table *tabular.Table, format string, pretty bool) ([]byte, error) {
	switch format {
	case "csv":
		return tabular.Render(table), nil
	case "json":
		out := tableJSON{Columns: table.Columns, Records: table.Records}
		var (
			data []byte
			err  error
		)
		if pretty {
			data, err = json.MarshalIndent(out, "", "  ")
		} else {
			data, err = json.Marshal(out)
		}
		if err != nil {
			return nil, fmt.Errorf("serialization failed: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("invalid format: %s (must be json or csv)", format)
	}
}

func newColumnsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "columns [input.csv]",
		Short: "List the column names available for selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.loadTable(cmd, args[0])
			if err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), table.UniqueColumns())
		},
	}
}

func newColumnCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "column [input.csv] [name]",
		Short: "Print the values of one column, one per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.loadTable(cmd, args[0])
			if err != nil {
				return err
			}
			if !table.Has(args[1]) {
				return fmt.Errorf("column %q not found (have %v)", args[1], table.UniqueColumns())
			}
			return writeLines(cmd.OutOrStdout(), table.Column(args[1]))
		},
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
