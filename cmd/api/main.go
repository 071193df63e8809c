// @title SpyCat Agency API
// @version 1.0
// @description Gestión de spy cats, misiones, targets y notas.
// @BasePath /
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	addr       string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "spycat-api",
		Short:         "API de la Spy Cat Agency",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Sin subcomando = serve (así `go run ./cmd/api` sigue levantando el server).
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), flags)
		},
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", os.Getenv("SPYCAT_CONFIG"), "archivo YAML de configuración")
	root.PersistentFlags().StringVar(&flags.addr, "addr", "", "dirección de escucha (pisa config y PORT)")

	root.AddCommand(newServeCmd(flags), newCheckBreedCmd(flags))
	return root
}
