package main

import (
	"context"
	"os"

	"github.com/tu-usuario/legajos-pro/internal/application/usecase"
	"github.com/tu-usuario/legajos-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/legajos-pro/internal/interfaces/console"
	"github.com/tu-usuario/legajos-pro/pkg/config"
	"github.com/tu-usuario/legajos-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	empleadoRepo := postgres.NewEmpleadoRepository(pool)
	legajoRepo := postgres.NewLegajoRepository(pool)
	txRunner := postgres.NewTxRunner(pool, log)

	empleadoUC := usecase.NewEmpleadoUseCase(empleadoRepo, legajoRepo, txRunner, log)
	legajoUC := usecase.NewLegajoUseCase(legajoRepo, txRunner, log)

	menu := console.NewMenu(os.Stdin, os.Stdout, empleadoUC, legajoUC)
	menu.Run(ctx)

	log.Info().Msg("aplicación finalizada")
}
