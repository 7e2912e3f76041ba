package fresh

import (
	"fmt"
	"time"

	"github.com/123ang/expiry-alert-cli/internal/service"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show aggregate freshness counts and the daily reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(env *appEnv) error {
			items, fromCache, err := service.FetchItems(cmd.Context(), env.db, env.client)
			if err != nil {
				return err
			}
			now := time.Now()
			_, counts := service.ClassifyInventory(items, now, env.loc)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Inventory summary%s\n", staleNote(fromCache))
			fmt.Fprintf(out, "Total: %d\n", counts.Total)
			fmt.Fprintf(out, "%s: %d\n", env.table.Get("state_fresh"), counts.Fresh)
			fmt.Fprintf(out, "%s: %d\n", env.table.Get("state_expiring_soon"), counts.ExpiringSoon)
			fmt.Fprintf(out, "%s: %d\n", env.table.Get("state_expired"), counts.Expired)

			// The reminder check runs after the summary has rendered, the
			// same way the app defers it until after the main view settles.
			fired, err := service.CheckReminder(env.db, counts.Expired, now, env.loc)
			if err != nil {
				return err
			}
			if fired {
				fmt.Fprintf(out, "\n! "+env.table.Get("reminder_expired_items")+"\n", counts.Expired)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
