package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"dossard/internal/config"
	"dossard/internal/importer"
	"dossard/internal/match"
	"dossard/internal/store"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var (
		nameFlag      string
		cityFlag      string
		dateFlag      string
		mapFlags      []string
		collisionFlag string
		dryRunFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a results file into a new event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(nameFlag) == "" || strings.TrimSpace(cityFlag) == "" || strings.TrimSpace(dateFlag) == "" {
				return fmt.Errorf("--name, --city, and --date are required")
			}
			switch collisionFlag {
			case "ask", "replace", "abort":
			default:
				return fmt.Errorf("--on-collision must be ask, replace, or abort")
			}
			overrides, err := parseMapOverrides(mapFlags)
			if err != nil {
				return err
			}
			text, err := readFileText(args[0])
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, logger *slog.Logger, st *store.Store) error {
				var matcher *match.Matcher
				if cfg.Matching.Enabled {
					matcher = match.New(st, logger)
				}

				sess := importer.NewSession(cfg, logger, st, matcher)
				if err := sess.LoadFile(text); err != nil {
					return err
				}
				for field, header := range overrides {
					if err := sess.Override(field, header); err != nil {
						return err
					}
				}

				if dryRunFlag {
					batch, err := sess.Preview()
					if err != nil {
						return err
					}
					fmt.Printf("Dry run: %d records would be committed, %d rows skipped, unparsed cells: %s\n",
						len(batch.Records), batch.Skipped, formatUnparsed(batch.Unparsed))
					return nil
				}

				identity := importer.NewIdentity(nameFlag, cityFlag, dateFlag)
				report, err := sess.Commit(cmd.Context(), identity, collisionDecider(collisionFlag))
				if err != nil {
					return err
				}
				printReport(report)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "Event name")
	cmd.Flags().StringVar(&cityFlag, "city", "", "Event city")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Event date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&mapFlags, "map", nil, "Override a column mapping, e.g. --map finish_time=Temps (repeatable)")
	cmd.Flags().StringVar(&collisionFlag, "on-collision", "ask", "What to do when the event already exists: ask, replace, or abort")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Parse and validate without writing anything")

	return cmd
}

// collisionDecider turns the --on-collision flag into a decision callback.
// "ask" prompts on a terminal and aborts otherwise.
func collisionDecider(mode string) importer.DecideFunc {
	return func(existing *store.Event) importer.Decision {
		switch mode {
		case "replace":
			return importer.DecisionReplace
		case "abort":
			return importer.DecisionAbort
		}

		if !isatty.IsTerminal(os.Stdin.Fd()) {
			fmt.Fprintf(os.Stderr, "event %q already exists; pass --on-collision replace or abort\n", existing.Slug)
			return importer.DecisionAbort
		}
		fmt.Printf("Event %q (%s) already exists. Replace it and delete its results? [y/N] ", existing.Slug, existing.Date)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.EqualFold(strings.TrimSpace(answer), "y") {
			return importer.DecisionReplace
		}
		return importer.DecisionAbort
	}
}

func printReport(report *importer.Report) {
	fmt.Println(renderTable(
		[]string{"Event", "Rows", "Skipped", "Unparsed cells", "Matching"},
		[][]string{{
			report.Slug,
			fmt.Sprintf("%d", report.Rows),
			fmt.Sprintf("%d", report.Skipped),
			formatUnparsed(report.Unparsed),
			formatMatch(report),
		}},
	))
}
