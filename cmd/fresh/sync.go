package fresh

import (
	"fmt"

	"github.com/123ang/expiry-alert-cli/internal/service"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the offline cache from the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			result, err := service.Sync(cmd.Context(), env.db, env.client)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Synced %d categories, %d locations, %d items, %d shopping entries\n",
				result.Categories, result.Locations, result.Items, result.Shopping)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
