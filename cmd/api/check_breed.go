package main

import (
	"context"
	"fmt"
	"strings"

	"spy-cat-agency/internal/adapters/breeds/thecatapi"
	"spy-cat-agency/internal/config"

	"github.com/spf13/cobra"
)

// check-breed consulta TheCatAPI con la misma config que el server.
// Útil para verificar la key y la conectividad antes de desplegar.
func newCheckBreedCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check-breed <name>",
		Short: "Verifica si una raza existe en TheCatAPI",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}

			client, err := thecatapi.NewClient(thecatapi.Config{
				BaseURL: cfg.CatAPI.BaseURL,
				APIKey:  cfg.CatAPI.APIKey,
				Timeout: cfg.CatAPITimeout(),
			})
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			name := strings.Join(args, " ")
			ok, err := client.Contains(ctx, name)
			if err != nil {
				return fmt.Errorf("breed lookup failed: %w", err)
			}
			if !ok {
				return fmt.Errorf("%q is not a known breed", name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q is a valid breed\n", name)
			return nil
		},
	}
}
