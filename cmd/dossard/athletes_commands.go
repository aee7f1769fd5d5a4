package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"dossard/internal/config"
	"dossard/internal/dialect"
	"dossard/internal/mapping"
	"dossard/internal/normalize"
	"dossard/internal/store"
)

func newAthletesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "athletes",
		Short: "Manage the registered athletes used for result matching",
	}
	cmd.AddCommand(newAthletesImportCommand(ctx))
	cmd.AddCommand(newAthletesListCommand(ctx))
	return cmd
}

func newAthletesImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import registered athletes from a delimited file",
		Long: "Import registered athletes from a delimited file. The file goes through the\n" +
			"same dialect detection and column mapping as results files; first and last\n" +
			"name columns are required, a birth year column is used when present.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readFileText(args[0])
			if err != nil {
				return err
			}
			table, _, err := dialect.Parse(text)
			if err != nil {
				return err
			}

			m := mapping.AutoMap(table.Headers)
			if !m.Complete() {
				return fmt.Errorf("could not locate first and last name columns in %v", table.Headers)
			}

			athletes, skipped := assembleAthletes(table, m)
			return ctx.withStore(func(cfg *config.Config, logger *slog.Logger, st *store.Store) error {
				n, err := st.InsertAthletes(cmd.Context(), athletes)
				if err != nil {
					return err
				}
				fmt.Printf("Imported %d athletes (%d rows skipped).\n", n, skipped)
				return nil
			})
		},
	}
}

func newAthletesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered athletes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, logger *slog.Logger, st *store.Store) error {
				athletes, err := st.ListAthletes(cmd.Context())
				if err != nil {
					return err
				}
				if len(athletes) == 0 {
					fmt.Println("No athletes registered.")
					return nil
				}
				rows := make([][]string, 0, len(athletes))
				for _, ath := range athletes {
					year := ""
					if ath.BirthYear != 0 {
						year = fmt.Sprintf("%d", ath.BirthYear)
					}
					rows = append(rows, []string{ath.LastName, ath.FirstName, year})
				}
				fmt.Println(renderTable([]string{"Last name", "First name", "Birth year"}, rows))
				return nil
			})
		},
	}
}

func assembleAthletes(table *dialect.RawTable, m *mapping.Mapping) ([]store.Athlete, int) {
	firstHeader, _ := m.Header(mapping.FieldFirstName)
	lastHeader, _ := m.Header(mapping.FieldLastName)
	yearHeader, hasYear := m.Header(mapping.FieldBirthYear)
	dateHeader, hasDate := m.Header(mapping.FieldBirthDate)

	var athletes []store.Athlete
	skipped := 0
	for _, row := range table.Rows {
		first := row[firstHeader]
		last := row[lastHeader]
		if first == "" || last == "" {
			skipped++
			continue
		}
		ath := store.Athlete{FirstName: first, LastName: last}
		if hasYear {
			if year := normalize.ParseBirthYear(row[yearHeader]); year.OK {
				ath.BirthYear = year.Val
			}
		}
		if ath.BirthYear == 0 && hasDate {
			if year := normalize.ParseBirthYear(row[dateHeader]); year.OK {
				ath.BirthYear = year.Val
			}
		}
		athletes = append(athletes, ath)
	}
	return athletes, skipped
}
