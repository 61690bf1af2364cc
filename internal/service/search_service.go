package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"zeus-ai-be/internal/dto"
	"zeus-ai-be/internal/repository/memory"
	"zeus-ai-be/pkg/llm"
	"zeus-ai-be/pkg/search"
	"zeus-ai-be/pkg/search/analyzer"
	"zeus-ai-be/pkg/search/composer"
	"zeus-ai-be/pkg/search/database"
	"zeus-ai-be/pkg/search/online"
	"zeus-ai-be/pkg/store"
)

// ISearchService runs the dual-source answer pipeline for one user query.
type ISearchService interface {
	AnalyzeAndSearch(ctx context.Context, request *dto.AnalyzeAndSearchRequest) (*search.SearchResponse, error)
}

// searchService coordinates the pipeline components. One logical request
// per call; no shared mutable state is touched outside the request scope.
type searchService struct {
	queryAnalyzer *analyzer.Analyzer
	retriever     *database.Retriever
	answerer      *database.Answerer
	researcher    *online.Researcher
	composer      *composer.Composer
	datasetRepo   *memory.DatasetRepository
	llmLogger     *log.Logger
	callTimeout   time.Duration
}

// NewSearchService wires the pipeline. callTimeout bounds each individual
// LLM round-trip; a timeout counts as a transport failure and triggers the
// component's fallback, exactly like a network error would.
func NewSearchService(
	llmProvider llm.LLMProvider,
	datasetRepo *memory.DatasetRepository,
	callTimeout time.Duration,
) ISearchService {
	llmLogger := initLLMLogger()

	return &searchService{
		queryAnalyzer: analyzer.NewAnalyzer(llmProvider, llmLogger),
		retriever:     database.NewRetriever(llmLogger),
		answerer:      database.NewAnswerer(llmProvider, llmLogger),
		researcher:    online.NewResearcher(llmProvider, llmLogger),
		composer:      composer.NewComposer(llmProvider, llmLogger),
		datasetRepo:   datasetRepo,
		llmLogger:     llmLogger,
		callTimeout:   callTimeout,
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_pipeline.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-PIPELINE] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// AnalyzeAndSearch is the pipeline entry point: analyze → retrieve/answer
// and research (concurrently when both fired) → compose → assemble.
// Pipeline-internal failures never surface here; every component degrades
// to its documented fallback, so the returned response is always renderable.
func (s *searchService) AnalyzeAndSearch(ctx context.Context, request *dto.AnalyzeAndSearchRequest) (*search.SearchResponse, error) {
	dataset, err := s.resolveDataset(request)
	if err != nil {
		return nil, err
	}

	analyzeCtx, cancelAnalyze := s.boundCtx(ctx)
	analysis := s.queryAnalyzer.Analyze(analyzeCtx, request.Message)
	cancelAnalyze()

	s.llmLogger.Printf("[SEARCH] query=%q database=%v online=%v",
		request.Message, analysis.RequiresDatabase, analysis.RequiresOnline)

	databaseResult := &search.DatabaseResult{Sources: []search.SourceCitation{}}
	onlineResult := &search.OnlineResult{Sources: []search.SourceCitation{}}

	// The two paths depend only on the analysis, not on each other, so they
	// fan out; the compositor waits for both to settle.
	var wg sync.WaitGroup

	if analysis.RequiresDatabase && dataset != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sources, dataContext := s.retriever.Retrieve(request.Message, dataset)
			databaseResult.Sources = sources
			databaseResult.Context = dataContext
			if dataContext != "" {
				answerCtx, cancel := s.boundCtx(ctx)
				defer cancel()
				databaseResult.Answer = s.answerer.Answer(answerCtx, request.Message, dataContext)
			}
		}()
	}

	if analysis.RequiresOnline && analysis.SanitizedQuery != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			researchCtx, cancel := s.boundCtx(ctx)
			defer cancel()
			onlineResult = s.researcher.Research(researchCtx, analysis.SanitizedQuery)
		}()
	}

	wg.Wait()

	composeCtx, cancelCompose := s.boundCtx(ctx)
	composition := s.composer.Compose(composeCtx, request.Message, databaseResult, onlineResult)
	cancelCompose()

	return search.Assemble(databaseResult, onlineResult, composition), nil
}

func (s *searchService) resolveDataset(request *dto.AnalyzeAndSearchRequest) (*store.Dataset, error) {
	if request.DatabaseData != nil {
		return request.DatabaseData, nil
	}
	if request.DatasetID != "" {
		dataset, found := s.datasetRepo.Get(request.DatasetID)
		if !found {
			return nil, fmt.Errorf("dataset %s not found", request.DatasetID)
		}
		return dataset, nil
	}
	return nil, nil
}

// boundCtx applies the per-call timeout. A timed-out call surfaces to the
// component as a transport failure and triggers its fallback.
func (s *searchService) boundCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.callTimeout)
}
