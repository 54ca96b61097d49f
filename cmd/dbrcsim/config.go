package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved cache configuration as JSON",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg := resolveConfig()

		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
