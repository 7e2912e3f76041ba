package fresh

import (
	"context"
	"fmt"
	"io"

	"github.com/123ang/expiry-alert-cli/internal/api"
	"github.com/123ang/expiry-alert-cli/internal/catalog"
	"github.com/123ang/expiry-alert-cli/internal/i18n"
	"github.com/123ang/expiry-alert-cli/internal/service"
	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage food categories",
}

var (
	categoryManage  bool
	categorySearch  string
	categorySection string
	categoryIcon    string
)

func renderSections(out io.Writer, sections []catalog.Section, tr i18n.Table) {
	for _, sec := range sections {
		fmt.Fprintf(out, "%s (%d)\n", service.SectionTitle(sec.Key, tr), len(sec.Items))
		for _, r := range sec.Items {
			marker := " "
			if r.Entry.Customization() {
				marker = "*"
			}
			fmt.Fprintf(out, "  %s %s\n", marker, r.DisplayName)
		}
	}
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories grouped into sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			entries, fromCache, err := service.FetchCatalog(cmd.Context(), env.db, env.client, service.KindCategory)
			if err != nil {
				return err
			}
			sections := service.OrganizeCatalog(entries, service.KindCategory, env.table, service.CatalogOptions{
				Manage: categoryManage,
				Search: categorySearch,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "Categories%s\n", staleNote(fromCache))
			renderSections(cmd.OutOrStdout(), sections, env.table)
			return nil
		})
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			input := api.CatalogEntryInput{Name: args[0], Icon: categoryIcon}
			if categorySection != "" {
				input.Section = &categorySection
			}
			entry, err := env.client.CreateCatalogEntry(cmd.Context(), service.KindCategory, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added category %q (%s)\n", entry.Name, entry.ID)
			return refreshCatalog(cmd.Context(), env, service.KindCategory)
		})
	},
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a custom category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			if err := env.client.UpdateCatalogEntry(cmd.Context(), service.KindCategory, args[0], api.CatalogEntryInput{Name: args[1]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed category %s to %q\n", args[0], args[1])
			return refreshCatalog(cmd.Context(), env, service.KindCategory)
		})
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			if err := env.client.DeleteCatalogEntry(cmd.Context(), service.KindCategory, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %s\n", args[0])
			return refreshCatalog(cmd.Context(), env, service.KindCategory)
		})
	},
}

// refreshCatalog re-fetches a catalog after a mutation so the offline cache
// does not serve the pre-mutation snapshot.
func refreshCatalog(ctx context.Context, env *appEnv, kind string) error {
	_, _, err := service.FetchCatalog(ctx, env.db, env.client, kind)
	return err
}

func init() {
	categoryListCmd.Flags().BoolVar(&categoryManage, "manage", false, "Management view: Customize section first, normalized sections")
	categoryListCmd.Flags().StringVar(&categorySearch, "search", "", "Filter by display name")
	categoryAddCmd.Flags().StringVar(&categorySection, "section", "", "Section label")
	categoryAddCmd.Flags().StringVar(&categoryIcon, "icon", "", "Icon glyph")
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
	rootCmd.AddCommand(categoryCmd)
}
