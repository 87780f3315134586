package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Kappa-h/fibulopedia/core/config"
	"github.com/Kappa-h/fibulopedia/core/logger"
	"github.com/Kappa-h/fibulopedia/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the content files and their cross-references",
	Long: `Loads the content set and checks it for broken files, dangling
dropped_by references and loot mismatches. The wiki serves content with
dangling links; this command makes them visible.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		store := loadStore(cfg, logg)
		svc := integrity.NewService(store, logg)
		report := svc.Check()

		if jsonOutput {
			filename := fmt.Sprintf("content_validation_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			logg.Info("Detailed JSON report saved", zap.String("file", filename))
		}

		fmt.Println("\n=== Content Validation ===")
		fmt.Printf("Records Checked: %d\n", report.Checked)
		fmt.Printf("File Errors: %d\n", len(report.FileErrors))
		fmt.Printf("Dangling References: %d\n", len(report.DanglingRefs))
		fmt.Printf("Loot Warnings: %d\n", len(report.LootWarnings))

		for kind, msg := range report.FileErrors {
			fmt.Printf("  file %s: %s\n", kind, msg)
		}
		for _, ref := range report.DanglingRefs {
			fmt.Printf("  %s %s (%s): unknown monsters %v\n", ref.EntityType, ref.ID, ref.Name, ref.Missing)
		}

		if !report.Clean {
			return fmt.Errorf("content validation found problems")
		}
		fmt.Println("Content is clean.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("json", false, "Write a detailed JSON report file")
}
