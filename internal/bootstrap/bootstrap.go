package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kirillkom/contract-term-analyzer/internal/config"
	"github.com/kirillkom/contract-term-analyzer/internal/core/analysis"
	"github.com/kirillkom/contract-term-analyzer/internal/core/ports"
	"github.com/kirillkom/contract-term-analyzer/internal/core/usecase"
	"github.com/kirillkom/contract-term-analyzer/internal/infrastructure/extractor"
	"github.com/kirillkom/contract-term-analyzer/internal/infrastructure/extractor/pdfext"
	"github.com/kirillkom/contract-term-analyzer/internal/infrastructure/extractor/plaintext"
	"github.com/kirillkom/contract-term-analyzer/internal/infrastructure/llm/ollama"
	"github.com/kirillkom/contract-term-analyzer/internal/infrastructure/ner/lexicon"
	"github.com/kirillkom/contract-term-analyzer/internal/infrastructure/queue/nats"
	"github.com/kirillkom/contract-term-analyzer/internal/infrastructure/report/excel"
	"github.com/kirillkom/contract-term-analyzer/internal/infrastructure/repository/postgres"
	"github.com/kirillkom/contract-term-analyzer/internal/infrastructure/resilience"
	"github.com/kirillkom/contract-term-analyzer/internal/infrastructure/storage/localfs"
	"github.com/kirillkom/contract-term-analyzer/internal/observability/logging"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	Queue ports.MessageQueue
	Docs  ports.DocumentRepository

	IngestUC  ports.DocumentIngestor
	ProcessUC ports.DocumentProcessor
	CompareUC *usecase.CompareContractsUseCase
	QueryUC   *usecase.DocumentQueryUseCase
	Exporter  ports.ReportExporter

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, service string) (*App, error) {
	logger := logging.NewJSONLogger(service, cfg.LogLevel)

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	docs := postgres.NewDocumentRepository(db)
	if err := docs.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	comparisons := postgres.NewComparisonRepository(db)

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	exec := resilience.NewExecutor(resilience.Config{
		RetryMaxAttempts:    cfg.RetryMaxAttempts,
		RetryInitialBackoff: cfg.RetryInitialBackoff,
		RetryMaxBackoff:     cfg.RetryMaxBackoff,
		BreakerEnabled:      cfg.BreakerEnabled,
		BreakerOpenTimeout:  cfg.BreakerOpenTimeout,
	}, logger)

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: exec,
		Logger:             logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	ollamaClient := ollama.New(cfg.OllamaURL, cfg.OllamaGenModel, cfg.OllamaEmbedModel)
	embedder := ollama.NewResilientEmbedder(ollama.NewEmbedder(ollamaClient), exec)
	completer := ollama.NewResilientCompleter(ollama.NewCompleter(ollamaClient), exec)

	recognizer, err := lexicon.New(nil)
	if err != nil {
		return nil, fmt.Errorf("init entity recognizer: %w", err)
	}

	ruleSet, err := analysis.LoadRuleSet(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("load rule set: %w", err)
	}
	analyzer, err := analysis.NewAnalyzer(ruleSet, embedder, recognizer, completer, logger)
	if err != nil {
		return nil, fmt.Errorf("init analyzer: %w", err)
	}

	textExtractor := extractor.NewDispatcher(
		pdfext.NewExtractor(storage),
		plaintext.NewExtractor(storage),
	)

	ingestUC := usecase.NewIngestDocumentUseCase(docs, storage, queue)
	processUC := usecase.NewProcessDocumentUseCase(docs, textExtractor, analyzer)
	compareUC := usecase.NewCompareContractsUseCase(docs, comparisons, analyzer)
	queryUC := usecase.NewDocumentQueryUseCase(docs)

	return &App{
		Config: cfg,
		Logger: logger,
		Queue:  queue,
		Docs:   docs,

		IngestUC:  ingestUC,
		ProcessUC: processUC,
		CompareUC: compareUC,
		QueryUC:   queryUC,
		Exporter:  excel.NewExporter(),

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
