package usecase

import (
	"context"
	"log"
	"time"

	"tripster/internal/domain/model"
	"tripster/internal/domain/service"
)

// ScenicTripUseCase 景観ルート評価のエントリポイント
type ScenicTripUseCase interface {
	// Evaluate 出発地と目的地の候補ルートを評価し、スコアとおすすめ説明文を返す
	Evaluate(ctx context.Context, req *model.ScenicRequest) (*model.ScenicTripResponse, error)
}

// scenicTripUseCaseImpl はScenicTripUseCaseの実装。
// 4つのステージを固定順（取得→付加→スコア→説明文）で直列実行する。
// どのステージもフォールバック込みで必ず値を生成するため、パイプラインは中断しない。
type scenicTripUseCaseImpl struct {
	stages []service.TripStage
}

// NewScenicTripUseCase 新しいScenicTripUseCaseインスタンスを作成
func NewScenicTripUseCase(
	retrieval *service.RouteRetrievalStage,
	enrichment *service.PlaceEnrichmentStage,
	scoring *service.ScenicScoringStage,
	narrative *service.NarrativeExplanationStage,
) ScenicTripUseCase {
	return &scenicTripUseCaseImpl{
		stages: []service.TripStage{retrieval, enrichment, scoring, narrative},
	}
}

// Evaluate パイプラインを実行して公開用レスポンスを組み立てる
func (u *scenicTripUseCaseImpl) Evaluate(ctx context.Context, req *model.ScenicRequest) (*model.ScenicTripResponse, error) {
	log.Printf("🚀 景観ルート評価開始 (%s → %s)", req.Origin, req.Destination)

	state := model.NewTripState(req.Origin, req.Destination, req.ScenicMode)
	for _, stage := range u.stages {
		stage.Execute(ctx, state)
	}

	routes := make([]model.RouteSummary, 0, len(state.Routes))
	for _, route := range state.Routes {
		routes = append(routes, model.RouteSummary{
			ID:          route.ID,
			Label:       route.Label,
			Polyline:    route.Polyline,
			ScenicScore: state.ScenicScores[route.ID],
		})
	}

	var topID *string
	if top := service.TopRoute(state.Routes, state.ScenicScores); top != nil {
		id := top.ID
		topID = &id
	}

	log.Printf("🎉 景観ルート評価完了 (%d件)", len(routes))

	return &model.ScenicTripResponse{
		Routes:           routes,
		Scores:           state.ScenicScores,
		Explanation:      state.Explanation,
		TopScenicRouteID: topID,
		Timestamp:        time.Now().Unix(),
	}, nil
}
