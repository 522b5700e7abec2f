package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssprune.yaml config file",
	Long:  `Create a .cssprune.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssprune.yaml"); err == nil && !force {
			return fmt.Errorf(".cssprune.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssprune.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssprune.yaml")
		return nil
	},
}

const defaultConfig = `# cssprune configuration

# Shared settings
verbose: false
quiet: false
color: false

# Scan settings
scan:
  format: text             # text | json
  max-index-size: 4294967296
  respect-gitignore: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
