package fresh

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath     string
	configPath string
	langFlag   string
	tzFlag     string
)

var rootCmd = &cobra.Command{
	Use:   "fresh",
	Short: "fresh tracks household food expiry from your terminal",
	Long:  "fresh is the terminal client for the Expiry Alert household food tracker: inventory with freshness states, categories, locations, shopping list, and a once-per-day expired-items reminder.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to local state database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Display language (BCP-47 tag, e.g. en, ms, zh-Hant, ja)")
	rootCmd.PersistentFlags().StringVar(&tzFlag, "timezone", "", "IANA timezone for expiry day boundaries (default: system)")
}
