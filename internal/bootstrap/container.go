package bootstrap

import (
	"time"

	"zeus-ai-be/internal/config"
	"zeus-ai-be/internal/controller"
	"zeus-ai-be/internal/pkg/logger"
	"zeus-ai-be/internal/repository/memory"
	"zeus-ai-be/internal/service"
	"zeus-ai-be/pkg/llm/factory"
)

type Container struct {
	SearchController  controller.ISearchController
	PlanController    controller.IPlanController
	ChatController    controller.IChatController
	DatasetController controller.IDatasetController

	SysLogger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	callTimeout := time.Duration(cfg.Ai.TimeoutSeconds) * time.Second

	// A missing credential does not stop the server: the pipeline
	// controllers answer 500 per-request instead, so /health and the
	// dataset endpoints keep working.
	llmProvider, llmErr := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.AnthropicAPIKey,
		cfg.Ai.OllamaBaseURL,
		callTimeout,
	)
	if llmErr != nil {
		sysLogger.Warn("bootstrap", "LLM provider unavailable", map[string]interface{}{"error": llmErr.Error()})
	} else {
		sysLogger.Info("bootstrap", "LLM provider initialized", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"model":    cfg.Ai.LLMModel,
		})
	}

	datasetRepo := memory.NewDatasetRepository()
	datasetService := service.NewDatasetService(datasetRepo)

	var searchService service.ISearchService
	var planService service.IPlanService
	var chatService service.IChatService
	if llmErr == nil {
		searchService = service.NewSearchService(llmProvider, datasetRepo, callTimeout)
		planService = service.NewPlanService(llmProvider, callTimeout)
		chatService = service.NewChatService(llmProvider, callTimeout)
	}

	return &Container{
		SearchController:  controller.NewSearchController(searchService, sysLogger, llmErr),
		PlanController:    controller.NewPlanController(planService, llmErr),
		ChatController:    controller.NewChatController(chatService, llmErr),
		DatasetController: controller.NewDatasetController(datasetService),
		SysLogger:         sysLogger,
	}
}
