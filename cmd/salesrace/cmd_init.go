package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"salesrace/internal/config"
)

// runInit writes the default config to --config. An existing file is kept
// unless --force is given.
func runInit(cmd *cobra.Command, args []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config %s already exists (use --force to overwrite)", configPath)
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config: %w", err)
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(configPath); err != nil {
		return err
	}
	logger.Info("config written", zap.String("path", configPath))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	return nil
}
