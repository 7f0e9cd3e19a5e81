package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/autoalias-go/pkg/autoalias"
	"github.com/ukaji3/autoalias-go/pkg/autoalias/config"
)

func newConfigCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change persisted preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(root)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(store.Config())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := root.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(newSwitchCommand(root, "enable", "Turn automatic alias sync on", true))
	cmd.AddCommand(newSwitchCommand(root, "disable", "Turn automatic alias sync off", false))
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip automatic alias sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(root)
			if err != nil {
				return err
			}
			orch := autoalias.NewOrchestrator(autoalias.NewSynchronizer(store.Config().Options()), store)
			enabled, err := orch.Toggle()
			if err != nil {
				return err
			}
			printState(cmd, enabled)
			return nil
		},
	})

	return cmd
}

func newSwitchCommand(root *rootOptions, use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(root)
			if err != nil {
				return err
			}
			if err := store.SetAutoAliasEnabled(enabled); err != nil {
				return err
			}
			printState(cmd, enabled)
			return nil
		},
	}
}

func openStore(root *rootOptions) (*config.Store, error) {
	store, err := config.Open(root.configPath)
	if err != nil {
		return nil, commandError("loading config: %w", err)
	}
	return store, nil
}

func printState(cmd *cobra.Command, enabled bool) {
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "automatic alias sync %s\n", state)
}
