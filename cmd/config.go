package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Biki-dev/Contrib-Aura-Farming/config"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage aura configuration",
	}
	cmd.AddCommand(newCmdConfigInit())
	cmd.AddCommand(newCmdConfigShow())
	cmd.AddCommand(newCmdConfigPath())
	return cmd
}

func newCmdConfigInit() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ConfigFileExists() {
				return fmt.Errorf("config file already exists at %s", config.ConfigPath())
			}

			cfg := &config.Config{
				DefaultFormat: "table",
				Theme:         "classic",
			}
			if err := cfg.Save(); err != nil {
				return err
			}

			fmt.Printf("Created config file at %s\n", config.ConfigPath())
			return nil
		},
	}
}

func newCmdConfigShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Never print a configured token
			cfg.Token = ""

			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}
}

func newCmdConfigPath() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file locations",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("global: %s\n", config.ConfigPath())
			fmt.Printf("local:  %s\n", config.LocalConfigPath())
		},
	}
}
