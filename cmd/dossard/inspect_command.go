package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dossard/internal/config"
	"dossard/internal/dialect"
	"dossard/internal/mapping"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show detected dialect, headers, and proposed column mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			text, err := readFileText(args[0])
			if err != nil {
				return err
			}
			table, d, err := dialect.Parse(text)
			if err != nil {
				return err
			}

			layout := "generic"
			if d.Vendor {
				layout = "vendor (Elogica)"
			}
			fmt.Printf("Layout:    %s\n", layout)
			fmt.Printf("Delimiter: %s\n", delimiterName(d.Delimiter))
			fmt.Printf("Data rows: %d\n\n", len(table.Rows))

			printMapping(table.Headers, mapping.AutoMap(table.Headers))
			printPreview(cfg, table)
			return nil
		},
	}
}

// printMapping lists every detected header with the canonical field it
// auto-mapped to, so the operator sees exactly what --map can override.
func printMapping(headers []string, m *mapping.Mapping) {
	byHeader := make(map[string]mapping.Field)
	for field, header := range m.Bound() {
		byHeader[header] = field
	}

	rows := make([][]string, 0, len(headers))
	for _, header := range headers {
		field := "(unmapped)"
		if f, ok := byHeader[header]; ok {
			field = string(f)
		}
		rows = append(rows, []string{header, field})
	}
	fmt.Println(renderTable([]string{"Header", "Canonical field"}, rows))
	fmt.Println()
}

func printPreview(cfg *config.Config, table *dialect.RawTable) {
	limit := cfg.Import.PreviewRows
	if limit > len(table.Rows) {
		limit = len(table.Rows)
	}
	if limit == 0 {
		return
	}

	rows := make([][]string, 0, limit)
	for _, row := range table.Rows[:limit] {
		cells := make([]string, len(table.Headers))
		for i, header := range table.Headers {
			cells[i] = row[header]
		}
		rows = append(rows, cells)
	}
	fmt.Println(renderTable(table.Headers, rows))
	if len(table.Rows) > limit {
		fmt.Printf("... and %d more rows\n", len(table.Rows)-limit)
	}
}
