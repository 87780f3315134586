package cmd

import (
	"fmt"
	"strings"

	"github.com/Kappa-h/fibulopedia/core/config"
	"github.com/Kappa-h/fibulopedia/core/logger"
	"github.com/Kappa-h/fibulopedia/feature/search"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the wiki content from the terminal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entityType, _ := cmd.Flags().GetString("type")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		store := loadStore(cfg, logg)
		svc := search.NewService(store, logg)

		q := strings.Join(args, " ")
		var results []search.Result
		if entityType != "" {
			results = svc.SearchType(q, entityType)
		} else {
			results = svc.Search(q)
		}

		if len(results) == 0 {
			fmt.Printf("No results for %q.\n", q)
			return nil
		}

		fmt.Printf("%d result(s) for %q:\n", len(results), q)
		for _, r := range results {
			fmt.Printf("  [%-9s] %-24s %s\n", r.EntityType, r.Name, r.Snippet)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("type", "", "Restrict to one entity type (weapon, equipment, spell, monster, quest)")
}
