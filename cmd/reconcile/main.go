package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/fiscaladmin/reconcile/internal/config"
	"github.com/fiscaladmin/reconcile/internal/consolidate"
	consolidateStore "github.com/fiscaladmin/reconcile/internal/consolidate/store"
	"github.com/fiscaladmin/reconcile/internal/database"
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
	statementID := flag.String("statement", "", "id of the statement to process")
	flag.Parse()

	if *statementID == "" {
		fmt.Fprintln(os.Stderr, "usage: reconcile -statement <id>")
		os.Exit(2)
	}

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

	summary, err := orchestrator.Process(context.Background(), *statementID)
	if err != nil {
		slog.Error("processing failed", "statement_id", *statementID, "error", err)
		os.Exit(1)
	}

	fmt.Printf("statement %s processed: %d rows imported (%d duplicates), %d totals, %d posted, %d unmatched\n",
		summary.StatementID,
		summary.Import.RowCount, summary.Import.DuplicateCount,
		summary.Consolidation.TotalCount,
		summary.Recognition.Posted, summary.Recognition.Unmatched,
	)
}
