package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nikolayk812/shopledger/internal/admin"
	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/nikolayk812/shopledger/internal/spreadsheet"
	"github.com/spf13/cobra"
)

const (
	analyticsEntity = "analytics"
	exportPageSize  = 100
)

type exportOptions struct {
	format string
	output string
	local  bool
	from   string
	to     string
}

func newExportCmd(a *app) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <products|orders|users|analytics>",
		Short: "Download an export file, or build an xlsx workbook locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := domain.ParseExportFormat(opts.format)
			if err != nil {
				return err
			}

			output := opts.output
			if output == "" {
				output = args[0] + "." + format.Extension()
			}

			var data []byte
			switch {
			case args[0] == analyticsEntity:
				if opts.local {
					return fmt.Errorf("analytics can only be exported by the server")
				}
				data, err = readAll(a.client.ExportAnalytics(cmd.Context(), opts.from, opts.to, format))
			case opts.local:
				if format != domain.FormatExcel {
					return fmt.Errorf("local export supports only xlsx, got %s", format)
				}
				data, err = buildWorkbook(cmd.Context(), admin.NewConsole(a.client), args[0])
			default:
				var entity domain.ExportEntity
				if entity, err = domain.ParseExportEntity(args[0]); err != nil {
					return err
				}
				data, err = readAll(a.client.Export(cmd.Context(), entity, format))
			}
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", string(domain.FormatCSV), "csv, xlsx or pdf")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `file to write, "-" for stdout (default <entity>.<ext>)`)
	cmd.Flags().BoolVar(&opts.local, "local", false, "build the workbook from the admin lists instead of the server export")
	cmd.Flags().StringVar(&opts.from, "from", "", "analytics start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.to, "to", "", "analytics end date, YYYY-MM-DD")

	return cmd
}

func buildWorkbook(ctx context.Context, c *admin.Console, name string) ([]byte, error) {
	entity, err := domain.ParseExportEntity(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	switch entity {
	case domain.ExportProducts:
		if err := c.LoadAllProducts(ctx, exportPageSize); err != nil {
			return nil, err
		}
		err = spreadsheet.WriteProducts(&buf, c.Products())
	case domain.ExportOrders:
		if err := c.LoadOrders(ctx); err != nil {
			return nil, err
		}
		err = spreadsheet.WriteOrders(&buf, c.Orders())
	case domain.ExportUsers:
		if err := c.LoadUsers(ctx); err != nil {
			return nil, err
		}
		err = spreadsheet.WriteUsers(&buf, c.Users())
	}
	if err != nil {
		return nil, fmt.Errorf("spreadsheet.Write: %w", err)
	}

	return buf.Bytes(), nil
}

func readAll(rc io.ReadCloser, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}
	return data, nil
}

func writeOutput(stdout io.Writer, output string, data []byte) error {
	if output == "-" {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(filepath.Clean(output), data, 0o600); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	_, err := fmt.Fprintf(stdout, "wrote %d bytes to %s\n", len(data), output)
	return err
}
