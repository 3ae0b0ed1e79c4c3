package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/tu-usuario/legajos-pro/pkg/config"
	"github.com/tu-usuario/legajos-pro/pkg/logger"
)

func main() {
	migrationsDir := flag.String("dir", "migrations", "directorio con los archivos de migración")
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := runMigration(action, *migrationsDir, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("migración fallida")
	}
	log.Info().Str("action", action).Msg("migración completada")
}

func runMigration(action, dir, dsn string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolver ruta %s: %w", dir, err)
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", filepath.ToSlash(absDir)), dsn)
	if err != nil {
		return fmt.Errorf("crear instancia de migrate: %w", err)
	}
	defer m.Close()

	switch action {
	case "up":
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			return err
		}
		return nil
	case "down":
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			return err
		}
		return nil
	case "drop":
		return m.Drop()
	default:
		return fmt.Errorf("acción no soportada %q", action)
	}
}
