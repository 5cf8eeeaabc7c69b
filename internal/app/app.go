// ABOUTME: Wires configuration, storage, and engines into one application object
// ABOUTME: Shared by the CLI commands and the MCP server
package app

import (
	"fmt"
	"path/filepath"

	"github.com/geigermatic/transcript-gen/internal/config"
	"github.com/geigermatic/transcript-gen/internal/core"
	"github.com/geigermatic/transcript-gen/internal/llm"
	"github.com/geigermatic/transcript-gen/internal/logging"
	"github.com/geigermatic/transcript-gen/internal/models"
	"github.com/geigermatic/transcript-gen/internal/storage/sqlite"
	"github.com/geigermatic/transcript-gen/internal/store"
)

// App bundles the wired components behind one handle
type App struct {
	Config     *config.Config
	Logger     logging.Logger
	LLM        *llm.Client
	DB         *sqlite.DB
	Documents  *sqlite.DocumentStore
	Pairs      *sqlite.PairStore
	Embeddings *store.EmbeddingStore
	Chunker    *core.Chunker
	Retriever  *core.Retriever
	Chat       *core.ChatEngine
	Summarizer *core.Summarizer
	AB         *core.ABEngine
}

// New loads configuration, opens storage, and wires every engine. The
// embedding index is rehydrated from the stored chunk vectors so search
// works across CLI invocations.
func New(verbose bool) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return NewWithConfig(cfg, logging.New(verbose))
}

// NewWithConfig wires the application around an explicit config and logger
func NewWithConfig(cfg *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	client, err := llm.NewClient(llm.ClientConfig{
		BaseURL:        cfg.BaseURL,
		APIKey:         cfg.APIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("creating model client: %w", err)
	}

	dbPath := sqlite.DefaultDBPath()
	if cfg.DataDir != "" {
		dbPath = filepath.Join(cfg.DataDir, "transcripts.db")
	}
	db, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	app := &App{
		Config:    cfg,
		Logger:    logger,
		LLM:       client,
		DB:        db,
		Documents: sqlite.NewDocumentStore(db),
		Pairs:     sqlite.NewPairStore(db),
		Embeddings: store.NewEmbeddingStore(client, logger, store.Options{
			VectorWeight:  cfg.VectorWeight,
			LexicalWeight: cfg.LexicalWeight,
		}),
		Chunker: core.NewChunker(cfg.ChunkTargetWords, cfg.ChunkOverlapWords),
	}

	app.Retriever = core.NewRetriever(app.Embeddings, cfg.MaxRetrievalResults, cfg.SimilarityThreshold, logger)
	app.Chat = core.NewChatEngine(client, app.Retriever, app.Embeddings, cfg.MaxContextMessages, logger)
	app.Summarizer = core.NewSummarizer(client, logger)
	app.AB = core.NewABEngine(app.Summarizer, app.Pairs, cfg.VariantDelay, logger)

	if err := app.rehydrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return app, nil
}

// rehydrate loads every stored document's embedded chunks into the
// in-memory index
func (a *App) rehydrate() error {
	docs, err := a.Documents.ListDocuments()
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}
	for _, doc := range docs {
		chunks, err := a.Documents.GetEmbeddedChunks(doc.ID)
		if err != nil {
			return fmt.Errorf("loading chunks for document %s: %w", doc.ID, err)
		}
		a.Embeddings.LoadDocument(doc.ID, chunks)
	}
	if len(docs) > 0 {
		a.Logger.Info("rehydrated embedding index", "documents", len(docs))
	}
	return nil
}

// Ingest chunks, embeds, and persists one document end to end
func (a *App) Ingest(title, text string, onProgress func(models.EmbeddingProgress)) (*models.Document, []models.EmbeddedChunk, error) {
	doc := models.NewDocument(title, text)
	chunks := a.Chunker.Chunk(doc.ID, doc.Text)
	if len(chunks) == 0 {
		return nil, nil, fmt.Errorf("document %q has no text to index", title)
	}

	embedded, err := a.Embeddings.EmbedDocument(doc.ID, chunks, onProgress)
	if err != nil {
		return nil, nil, fmt.Errorf("embedding document %q: %w", title, err)
	}

	if err := a.Documents.SaveDocument(doc, embedded); err != nil {
		a.Embeddings.RemoveDocument(doc.ID)
		return nil, nil, fmt.Errorf("persisting document %q: %w", title, err)
	}

	return &doc, embedded, nil
}

// DocumentTitles maps stored document IDs to their titles
func (a *App) DocumentTitles() (map[string]string, error) {
	docs, err := a.Documents.ListDocuments()
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(docs))
	for _, doc := range docs {
		titles[doc.ID] = doc.Title
	}
	return titles, nil
}

// Close releases the database handle
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
