package cli

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/easylog/internal/api/request"
	"github.com/mcoot/easylog/internal/api/response"
	"github.com/mcoot/easylog/internal/model"
	"github.com/mcoot/easylog/internal/services/registry"
)

func newEntitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entities",
		Aliases: []string{"entity"},
		Short:   "Manage clients and customers",
	}

	cmd.AddCommand(newEntitiesListCmd())
	cmd.AddCommand(newEntitiesAddCmd())
	cmd.AddCommand(newEntitiesDeleteCmd())

	return cmd
}

func newEntitiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <category>",
		Short: "List the entities of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}

			var result response.EntitiesResponse
			if err := client.Get(cmd.Context(), entitiesPath(category), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newEntitiesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <name>",
		Short: "Add an entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}

			req := request.CreateEntityRequest{Name: args[1]}
			var result response.EntitiesResponse
			if err := client.Post(cmd.Context(), entitiesPath(category), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newEntitiesDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <category> <name>",
		Short: "Delete an entity and all of its entries",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}
			name := args[1]
			if name == category.DefaultEntity() {
				return model.ErrDefaultEntityProtected
			}

			if !yes {
				ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), registry.RemovalPrompt(category, name))
				if err != nil {
					return err
				}
				if !ok {
					output(cmd).PrintMessage("Cancelled")
					return nil
				}
			}

			var result response.DeleteEntityResponse
			path := entityPath(category, name) + "?confirm=true"
			if err := client.Delete(cmd.Context(), path, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// confirm asks a y/N question; anything but y or yes declines
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func entitiesPath(c model.Category) string {
	return "/api/v1/" + string(c) + "/entities"
}

func entityPath(c model.Category, name string) string {
	return entitiesPath(c) + "/" + url.PathEscape(name)
}
