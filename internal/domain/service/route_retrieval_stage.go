package service

import (
	"context"
	"log"

	"tripster/internal/domain/model"
	"tripster/internal/domain/repository"
)

// RouteRetrievalStage 出発地と目的地から候補ルートを取得するステージ。
// 読み：Origin/Destination、書き：Routes。
type RouteRetrievalStage struct {
	routesRepo repository.RoutesRepository // nilの場合はAPIキー未設定
}

// NewRouteRetrievalStage 新しいRouteRetrievalStageを作成（routesRepoはnil可）
func NewRouteRetrievalStage(routesRepo repository.RoutesRepository) *RouteRetrievalStage {
	return &RouteRetrievalStage{routesRepo: routesRepo}
}

func (s *RouteRetrievalStage) Name() string { return "RouteRetrieval" }

// Execute 候補ルートを取得してTripStateに設定する。
// APIキー未設定・プロバイダ障害・0件応答のいずれもフォールバックルートに置き換え、
// 空のルート列を返すことはない。
func (s *RouteRetrievalStage) Execute(ctx context.Context, state *model.TripState) {
	if s.routesRepo == nil {
		log.Printf("📍 経路APIキー未設定のためフォールバックルートを使用します")
		state.Routes = FallbackRoutes(state.Origin, state.Destination)
		return
	}

	routes, err := s.routesRepo.FetchRoutes(ctx, state.Origin, state.Destination)
	if err != nil || len(routes) == 0 {
		log.Printf("⚠️ 経路取得結果が空のためフォールバックルートを使用します")
		state.Routes = FallbackRoutes(state.Origin, state.Destination)
		return
	}

	log.Printf("✅ %d件の候補ルートを取得", len(routes))
	state.Routes = routes
}
