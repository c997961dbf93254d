package cli

import (
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/easylog/internal/api/request"
	"github.com/mcoot/easylog/internal/api/response"
	"github.com/mcoot/easylog/internal/model"
)

func newEntriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entries",
		Aliases: []string{"entry"},
		Short:   "Read and write journal entries",
	}

	cmd.AddCommand(newEntriesListCmd())
	cmd.AddCommand(newEntriesAddCmd())

	return cmd
}

func newEntriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <category> <name>",
		Short: "List an entity's entries, newest first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}

			var result response.EntriesResponse
			if err := client.Get(cmd.Context(), entityPath(category, args[1])+"/entries", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newEntriesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <name> <text>...",
		Short: "Add an entry",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}

			req := request.CreateEntryRequest{Content: strings.Join(args[2:], " ")}
			var result model.JournalEntry
			if err := client.Post(cmd.Context(), entityPath(category, args[1])+"/entries", req, &result); err != nil {
				return err
			}

			output(cmd).Print(&result)
			return nil
		},
	}
}

func newJournalCmd() *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "journal <category> <name>",
		Short: "Show a journal page: both sidebars and the entity's entries",
		Long: `Show a journal page: both sidebars and the entity's entries.

An unknown entity reports where the web UI would redirect. With --follow the
default entity's page is shown instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}

			var result JournalPage
			path := "/api/v1/" + string(category) + "/journal/" + url.PathEscape(args[1])
			if follow {
				path += "?follow=true"
			}
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&follow, "follow", false, "show the default entity when the name is unknown")

	return cmd
}

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <text>...",
		Short: "Get a writing hint for draft entry text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.SuggestRequest{Text: strings.Join(args, " ")}
			var result response.SuggestResponse
			if err := client.Post(cmd.Context(), "/api/v1/suggest", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
