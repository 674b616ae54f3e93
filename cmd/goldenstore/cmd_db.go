package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/golden-store/internal/application/bootstrap"
	"github.com/jhoicas/golden-store/internal/infrastructure/postgres"
)

// goldenstore migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones SQL pendientes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := boot()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		st, err := openStorage(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer st.close()
		if st.pool == nil {
			return errors.New("migrate requiere DB_DRIVER=postgres")
		}

		applied, err := postgres.Migrate(ctx, st.pool, log)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Sin migraciones pendientes.")
			return nil
		}
		for _, name := range applied {
			fmt.Fprintf(cmd.OutOrStdout(), "Aplicada: %s\n", name)
		}
		return nil
	},
}

var (
	seedUsername string
	seedPassword string
)

// goldenstore seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Crea/actualiza el admin, los productos de ejemplo y restablece la configuración de la tienda",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := boot()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		st, err := openStorage(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer st.close()

		username := cfg.Admin.DefaultUsername
		if seedUsername != "" {
			username = seedUsername
		}
		password := cfg.Admin.SeedPassword
		if seedPassword != "" {
			password = seedPassword
		}

		res, err := bootstrap.NewSeeder(st.admins, st.products, st.tx, log).Seed(ctx, username, password)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Admin: %s\nProductos creados: %d, actualizados: %d\nÍtems de navegación: %d\n",
			res.AdminUsername, res.ProductsCreated, res.ProductsUpdated, res.NavigationItems)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedUsername, "username", "", "username del admin (por defecto ADMIN_DEFAULT_USERNAME)")
	seedCmd.Flags().StringVar(&seedPassword, "password", "", "password del admin (por defecto ADMIN_SEED_PASSWORD)")
}
