package fresh

import (
	"fmt"

	"github.com/123ang/expiry-alert-cli/internal/api"
	"github.com/123ang/expiry-alert-cli/internal/service"
	"github.com/spf13/cobra"
)

var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Manage storage locations",
}

var (
	locationManage  bool
	locationGrouped bool
	locationSearch  string
	locationSection string
	locationIcon    string
)

var locationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List storage locations grouped into sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			entries, fromCache, err := service.FetchCatalog(cmd.Context(), env.db, env.client, service.KindLocation)
			if err != nil {
				return err
			}
			sections := service.OrganizeCatalog(entries, service.KindLocation, env.table, service.CatalogOptions{
				Manage:  locationManage,
				Grouped: locationGrouped,
				Search:  locationSearch,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Locations%s\n", staleNote(fromCache))
			renderSections(cmd.OutOrStdout(), sections, env.table)
			return nil
		})
	},
}

var locationAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom storage location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			input := api.CatalogEntryInput{Name: args[0], Icon: locationIcon}
			if locationSection != "" {
				input.Section = &locationSection
			}
			entry, err := env.client.CreateCatalogEntry(cmd.Context(), service.KindLocation, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added location %q (%s)\n", entry.Name, entry.ID)
			return refreshCatalog(cmd.Context(), env, service.KindLocation)
		})
	},
}

var locationRenameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a custom storage location",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			if err := env.client.UpdateCatalogEntry(cmd.Context(), service.KindLocation, args[0], api.CatalogEntryInput{Name: args[1]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed location %s to %q\n", args[0], args[1])
			return refreshCatalog(cmd.Context(), env, service.KindLocation)
		})
	},
}

var locationDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom storage location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			if err := env.client.DeleteCatalogEntry(cmd.Context(), service.KindLocation, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted location %s\n", args[0])
			return refreshCatalog(cmd.Context(), env, service.KindLocation)
		})
	},
}

func init() {
	locationListCmd.Flags().BoolVar(&locationManage, "manage", false, "Management view: Customize section first, normalized sections")
	locationListCmd.Flags().BoolVar(&locationGrouped, "grouped", false, "Merge fridge compartments under one label")
	locationListCmd.Flags().StringVar(&locationSearch, "search", "", "Filter by display name")
	locationAddCmd.Flags().StringVar(&locationSection, "section", "", "Section label")
	locationAddCmd.Flags().StringVar(&locationIcon, "icon", "", "Icon glyph")
	locationCmd.AddCommand(locationListCmd)
	locationCmd.AddCommand(locationAddCmd)
	locationCmd.AddCommand(locationRenameCmd)
	locationCmd.AddCommand(locationDeleteCmd)
	rootCmd.AddCommand(locationCmd)
}
