// Command goldenstore API del catálogo Golden Store y tareas de mantenimiento.
//
//	goldenstore serve     servidor HTTP
//	goldenstore migrate   aplica migraciones SQL pendientes
//	goldenstore seed      admin + productos de ejemplo + configuración por defecto
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "goldenstore",
	Short:         "Golden Store: API del catálogo de accesorios con diseño de stickers",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}
