package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"dossard/internal/config"
	"dossard/internal/services"
	"dossard/internal/store"
)

func newEventsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Browse stored events and their results",
	}
	cmd.AddCommand(newEventsListCommand(ctx))
	cmd.AddCommand(newEventsShowCommand(ctx))
	cmd.AddCommand(newEventsDeleteCommand(ctx))
	return cmd
}

func newEventsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, logger *slog.Logger, st *store.Store) error {
				events, err := st.ListEvents(cmd.Context())
				if err != nil {
					return err
				}
				if len(events) == 0 {
					fmt.Println("No events stored.")
					return nil
				}

				rows := make([][]string, 0, len(events))
				for _, evt := range events {
					count, err := st.CountResults(cmd.Context(), evt.ID)
					if err != nil {
						return err
					}
					rows = append(rows, []string{
						evt.Slug, evt.Name, evt.City, evt.Date, fmt.Sprintf("%d", count),
					})
				}
				fmt.Println(renderTable([]string{"Slug", "Name", "City", "Date", "Results"}, rows))
				return nil
			})
		},
	}
}

func newEventsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show the results of one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, logger *slog.Logger, st *store.Store) error {
				evt, err := st.FindEventBySlug(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if evt == nil {
					return services.Wrap(services.ErrNotFound, "events", "show",
						fmt.Sprintf("no event with slug %q", args[0]), nil)
				}

				results, err := st.ResultsForEvent(cmd.Context(), evt.ID)
				if err != nil {
					return err
				}

				fmt.Printf("%s — %s, %s (%d results)\n\n", evt.Name, evt.City, evt.Date, len(results))
				rows := make([][]string, 0, len(results))
				for _, res := range results {
					rank := ""
					if res.OverallRank > 0 {
						rank = fmt.Sprintf("%d", res.OverallRank)
					}
					finish := res.FinishTime
					if finish == "" {
						finish = res.FinishDisplay
					}
					rows = append(rows, []string{
						rank, res.Bib, res.LastName, res.FirstName, res.Gender, res.Category, finish,
					})
				}
				fmt.Println(renderTable([]string{"Rank", "Bib", "Last name", "First name", "Sex", "Cat", "Finish"}, rows))
				return nil
			})
		},
	}
}

func newEventsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <slug>",
		Short: "Delete an event and all of its results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, logger *slog.Logger, st *store.Store) error {
				evt, err := st.FindEventBySlug(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if evt == nil {
					return services.Wrap(services.ErrNotFound, "events", "delete",
						fmt.Sprintf("no event with slug %q", args[0]), nil)
				}
				if err := st.DeleteEvent(cmd.Context(), evt.ID); err != nil {
					return err
				}
				fmt.Printf("Deleted event %s and its results.\n", evt.Slug)
				return nil
			})
		},
	}
}
