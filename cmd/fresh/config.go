package fresh

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/123ang/expiry-alert-cli/internal/i18n"
	"github.com/123ang/expiry-alert-cli/internal/service"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage fresh local configuration",
}

var (
	cfgLanguage   string
	cfgTimezone   string
	cfgBackendURL string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			updates := 0
			if cmd.Flags().Changed("language") {
				if err := service.SetConfig(sqldb, service.ConfigLanguage, cfgLanguage); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("timezone") {
				if err := service.SetConfig(sqldb, service.ConfigTimezone, cfgTimezone); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("backend-url") {
				if err := service.SetConfig(sqldb, service.ConfigBackendURL, cfgBackendURL); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("nothing to set; use --language, --timezone, or --backend-url")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d setting(s)\n", updates)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			value, ok, err := service.GetConfig(sqldb, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("config key %q is not set", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		})
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			values, err := service.ListConfig(sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, values[k])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Supported languages: %v\n", i18n.Supported())
			return nil
		})
	},
}

func init() {
	configSetCmd.Flags().StringVar(&cfgLanguage, "language", "", "Display language (BCP-47 tag)")
	configSetCmd.Flags().StringVar(&cfgTimezone, "timezone", "", "IANA timezone for expiry day boundaries")
	configSetCmd.Flags().StringVar(&cfgBackendURL, "backend-url", "", "Backend base URL")
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
