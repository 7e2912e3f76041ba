package fresh

import (
	"fmt"

	"github.com/123ang/expiry-alert-cli/internal/api"
	"github.com/123ang/expiry-alert-cli/internal/service"
	"github.com/spf13/cobra"
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Manage the shopping and wish list",
}

var (
	shoppingQuantity int
	shoppingWish     bool
)

var shoppingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shopping and wish items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			items, fromCache, err := service.FetchShoppingItems(cmd.Context(), env.db, env.client)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Shopping list%s: %d item(s)\n", staleNote(fromCache), len(items))
			for _, item := range items {
				check := "[ ]"
				if item.Done {
					check = "[x]"
				}
				kind := ""
				if item.Wish {
					kind = " (wish)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s x%d%s\t%s\n", check, item.Name, item.Quantity, kind, item.ID)
			}
			return nil
		})
	},
}

var shoppingAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a shopping or wish item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			item, err := env.client.AddShoppingItem(cmd.Context(), api.ShoppingItemInput{
				Name:     args[0],
				Quantity: shoppingQuantity,
				Wish:     shoppingWish,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", item.Name, item.ID)
			_, _, err = service.FetchShoppingItems(cmd.Context(), env.db, env.client)
			return err
		})
	},
}

var shoppingDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a shopping item done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			if err := env.client.SetShoppingItemDone(cmd.Context(), args[0], true); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s done\n", args[0])
			_, _, err := service.FetchShoppingItems(cmd.Context(), env.db, env.client)
			return err
		})
	},
}

var shoppingRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a shopping item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			if err := env.client.DeleteShoppingItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			_, _, err := service.FetchShoppingItems(cmd.Context(), env.db, env.client)
			return err
		})
	},
}

func init() {
	shoppingAddCmd.Flags().IntVar(&shoppingQuantity, "quantity", 1, "Quantity")
	shoppingAddCmd.Flags().BoolVar(&shoppingWish, "wish", false, "Add to the wish list instead")
	shoppingCmd.AddCommand(shoppingListCmd)
	shoppingCmd.AddCommand(shoppingAddCmd)
	shoppingCmd.AddCommand(shoppingDoneCmd)
	shoppingCmd.AddCommand(shoppingRemoveCmd)
	rootCmd.AddCommand(shoppingCmd)
}
