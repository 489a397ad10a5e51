package cli

import (
	"github.com/spf13/cobra"

	"github.com/culturiq/engine/internal/config"
)

func newConfigCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate the engine configuration",
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(opts); err != nil {
				return err
			}
			cmd.Println("configuration is valid")
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with secrets redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			redact(cfg)
			return printJSON(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.AddCommand(validate, show)
	return cmd
}

func redact(cfg *config.Config) {
	if cfg.Database.Password != "" {
		cfg.Database.Password = "[redacted]"
	}
	if cfg.Redis.Password != "" {
		cfg.Redis.Password = "[redacted]"
	}
	if cfg.MinIO.SecretKey != "" {
		cfg.MinIO.SecretKey = "[redacted]"
	}
}
