package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dpetrov/lodestar/internal/cli"
	"github.com/dpetrov/lodestar/internal/db"
	"github.com/dpetrov/lodestar/internal/repository"
	"github.com/dpetrov/lodestar/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.lodestar/lodestar.db
	dbPath := os.Getenv("LODESTAR_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".lodestar", "lodestar.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	catalogRepo := repository.NewSQLiteCatalogRepo(database)
	roadmapRepo := repository.NewSQLiteRoadmapRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// LODESTAR_LOG=1 logs use-case telemetry to stderr.
	var observers []service.UseCaseObserver
	if os.Getenv("LODESTAR_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Catalogs: service.NewCatalogService(catalogRepo, uow, observers...),
		Plans:    service.NewPlanService(catalogRepo, roadmapRepo, observers...),
		Roadmaps: service.NewRoadmapService(roadmapRepo),

		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
