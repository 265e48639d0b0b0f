package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tripster/internal/config"
	"tripster/internal/domain/repository"
	"tripster/internal/domain/service"
	"tripster/internal/handler"
	"tripster/internal/infrastructure/ai"
	"tripster/internal/infrastructure/maps"
	"tripster/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.Load()

	// 外部プロバイダの初期化（APIキー未設定の場合はnilのままフォールバック動作）
	var routesRepo repository.RoutesRepository
	var placesRepo repository.PlacesRepository
	if cfg.HasGoogleAPIKey() {
		routesRepo = maps.NewGoogleRoutesProvider(cfg.GoogleAPIKey)
		placesRepo = maps.NewGooglePlacesProvider(cfg.GoogleAPIKey)
	}

	var narrativeRepo repository.NarrativeGenerationRepository
	if cfg.HasGeminiAPIKey() {
		narrativeRepo = ai.NewGeminiNarrativeRepository(ai.NewGeminiClient(cfg.GeminiAPIKey))
	}

	// Dependency injection
	scenicUseCase := usecase.NewScenicTripUseCase(
		service.NewRouteRetrievalStage(routesRepo),
		service.NewPlaceEnrichmentStage(placesRepo),
		service.NewScenicScoringStage(),
		service.NewNarrativeExplanationStage(narrativeRepo),
	)
	scenicHandler := handler.NewScenicHandler(scenicUseCase)

	// Ginルーターのセットアップ
	r := gin.Default()
	r.Use(handler.RequestID())

	r.POST("/scenic", scenicHandler.PostScenicTrip)
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "tripster-scenic-api"})
	})

	fmt.Printf("Tripster Scenic API server starting on :%s...\n", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
