package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/fiscaladmin/reconcile/internal/config"
	"github.com/fiscaladmin/reconcile/internal/consolidate"
	consolidateStore "github.com/fiscaladmin/reconcile/internal/consolidate/store"
	"github.com/fiscaladmin/reconcile/internal/database"
	reconcileHttp "github.com/fiscaladmin/reconcile/internal/http"
	statementsHandler "github.com/fiscaladmin/reconcile/internal/http/statements"
	"github.com/fiscaladmin/reconcile/internal/importer"
	importerStore "github.com/fiscaladmin/reconcile/internal/importer/store"
	"github.com/fiscaladmin/reconcile/internal/pipeline"
	"github.com/fiscaladmin/reconcile/internal/posting"
	postingStore "github.com/fiscaladmin/reconcile/internal/posting/store"
	"github.com/fiscaladmin/reconcile/internal/recognize"
	recognizeStore "github.com/fiscaladmin/reconcile/internal/recognize/store"
	"github.com/fiscaladmin/reconcile/internal/statement"
	statementStore "github.com/fiscaladmin/reconcile/internal/statement/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.Migrations.Path); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	logger := slog.Default()

	recognizeSt := recognizeStore.New(db)

	var (
		statementService   = statement.NewService(statementStore.New(db))
		importService      = importer.NewService(importerStore.New(db), importer.NewDirSource(cfg.Statements.Dir), logger)
		consolidateService = consolidate.NewService(consolidateStore.New(db), logger)
		postingService     = posting.NewService(postingStore.New(db), logger)
		recognizeService   = recognize.NewService(recognizeSt, recognize.NewResolver(recognizeSt), postingService, logger)
	)

	orchestrator := pipeline.NewOrchestrator(
		statementService, importService, consolidateService, recognizeService, logger)

	statementsH := statementsHandler.NewHandler(statementService, orchestrator)

	router := reconcileHttp.New(statementsH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
