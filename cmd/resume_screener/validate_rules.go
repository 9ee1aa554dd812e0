package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateRulesCmd = &cobra.Command{
	Use:   "validate-rules",
	Short: "Validate a job rules JSON file",
	Long:  "Validates a job rules file against the rules schema and the engine's cross-field constraints without screening anything.",
	RunE:  runValidateRules,
}

var validateRulesInput string

func init() {
	validateRulesCmd.Flags().StringVarP(&validateRulesInput, "in", "i", "", "Path to job rules JSON file (required)")

	if err := validateRulesCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateRulesCmd)
}

func runValidateRules(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(validateRulesInput); os.IsNotExist(err) {
		return fmt.Errorf("rules file not found: %s", validateRulesInput)
	}

	if _, err := loadRules(validateRulesInput); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("%s is valid\n", validateRulesInput)
	return nil
}
