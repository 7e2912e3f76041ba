package fresh

import (
	"fmt"
	"io"
	"time"

	"github.com/123ang/expiry-alert-cli/internal/api"
	"github.com/123ang/expiry-alert-cli/internal/i18n"
	"github.com/123ang/expiry-alert-cli/internal/model"
	"github.com/123ang/expiry-alert-cli/internal/service"
	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage inventory items",
}

var (
	itemQuantity int
	itemExpiry   string
	itemCategory string
	itemLocation string
	itemNotes    string
)

func stateLabel(state model.FreshnessState, tr i18n.Table) string {
	switch state {
	case model.Expired:
		return tr.Get("state_expired")
	case model.ExpiringSoon:
		return tr.Get("state_expiring_soon")
	}
	return tr.Get("state_fresh")
}

func renderItems(out io.Writer, items []model.ClassifiedItem, tr i18n.Table) {
	for _, item := range items {
		due := "-"
		if item.LocalExpiryDay != "" {
			due = fmt.Sprintf("%s (%+d d)", item.LocalExpiryDay, item.DaysUntil)
		}
		fmt.Fprintf(out, "%s\tx%d\t%s\t%s\t%s\t%s\n",
			item.Name, item.Quantity, stateLabel(item.State, tr), due,
			item.CategoryName, item.LocationName)
	}
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List inventory with freshness states",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			items, fromCache, err := service.FetchItems(cmd.Context(), env.db, env.client)
			if err != nil {
				return err
			}
			classified, counts := service.ClassifyInventory(items, time.Now(), env.loc)
			fmt.Fprintf(cmd.OutOrStdout(), "Inventory%s: %d total, %d fresh, %d expiring soon, %d expired\n",
				staleNote(fromCache), counts.Total, counts.Fresh, counts.ExpiringSoon, counts.Expired)
			renderItems(cmd.OutOrStdout(), classified, env.table)
			return nil
		})
	},
}

var itemsExpiringCmd = &cobra.Command{
	Use:   "expiring",
	Short: "List only items that are expired or expiring soon",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			items, fromCache, err := service.FetchItems(cmd.Context(), env.db, env.client)
			if err != nil {
				return err
			}
			classified, _ := service.ClassifyInventory(items, time.Now(), env.loc)
			attention := service.ExpiringOnly(classified)
			fmt.Fprintf(cmd.OutOrStdout(), "Needs attention%s: %d item(s)\n", staleNote(fromCache), len(attention))
			renderItems(cmd.OutOrStdout(), attention, env.table)
			return nil
		})
	},
}

var itemsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an inventory item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			item, err := env.client.CreateFoodItem(cmd.Context(), api.FoodItemInput{
				Name:       args[0],
				Quantity:   itemQuantity,
				ExpiryDate: itemExpiry,
				CategoryID: itemCategory,
				LocationID: itemLocation,
				Notes:      itemNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added item %q (%s)\n", item.Name, item.ID)
			_, _, err = service.FetchItems(cmd.Context(), env.db, env.client)
			return err
		})
	},
}

var itemsUpdateCmd = &cobra.Command{
	Use:   "update <id> <name>",
	Short: "Update an inventory item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			err := env.client.UpdateFoodItem(cmd.Context(), args[0], api.FoodItemInput{
				Name:       args[1],
				Quantity:   itemQuantity,
				ExpiryDate: itemExpiry,
				CategoryID: itemCategory,
				LocationID: itemLocation,
				Notes:      itemNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated item %s\n", args[0])
			_, _, err = service.FetchItems(cmd.Context(), env.db, env.client)
			return err
		})
	},
}

var itemsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an inventory item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			if err := env.client.DeleteFoodItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %s\n", args[0])
			_, _, err := service.FetchItems(cmd.Context(), env.db, env.client)
			return err
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{itemsAddCmd, itemsUpdateCmd} {
		c.Flags().IntVar(&itemQuantity, "quantity", 1, "Quantity")
		c.Flags().StringVar(&itemExpiry, "expiry", "", "Expiry date (YYYY-MM-DD or timestamp)")
		c.Flags().StringVar(&itemCategory, "category", "", "Category ID")
		c.Flags().StringVar(&itemLocation, "location", "", "Location ID")
		c.Flags().StringVar(&itemNotes, "notes", "", "Notes")
	}
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsExpiringCmd)
	itemsCmd.AddCommand(itemsAddCmd)
	itemsCmd.AddCommand(itemsUpdateCmd)
	itemsCmd.AddCommand(itemsDeleteCmd)
	rootCmd.AddCommand(itemsCmd)
}
