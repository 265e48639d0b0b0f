package service

import (
	"context"
	"log"

	"tripster/internal/domain/model"
	"tripster/internal/domain/repository"
)

// 周辺スポット検索の基準条件。
// 検索はルートごとの座標ではなく固定の基準地点を使用する（セドナ近郊）。
var defaultSearchCenter = model.LatLng{Lat: 34.8697, Lng: -111.7609}

const (
	defaultSearchRadiusMeters = 4000
	defaultSearchCategory     = "park"
)

// PlaceEnrichmentStage 各ルートに周辺スポット情報を付加するステージ。
// 読み：Routes、書き：PlacesByRoute。
type PlaceEnrichmentStage struct {
	placesRepo repository.PlacesRepository // nilの場合はAPIキー未設定
}

// NewPlaceEnrichmentStage 新しいPlaceEnrichmentStageを作成（placesRepoはnil可）
func NewPlaceEnrichmentStage(placesRepo repository.PlacesRepository) *PlaceEnrichmentStage {
	return &PlaceEnrichmentStage{placesRepo: placesRepo}
}

func (s *PlaceEnrichmentStage) Name() string { return "PlaceEnrichment" }

// Execute ルートごとに周辺スポットを検索してTripStateに設定する。
// ルート単位で独立しており、あるルートの検索失敗は他のルートに影響しない
// （失敗したルートのエントリは空スライスになる）。
func (s *PlaceEnrichmentStage) Execute(ctx context.Context, state *model.TripState) {
	placesByRoute := make(map[string][]model.POI, len(state.Routes))

	for _, route := range state.Routes {
		if s.placesRepo == nil {
			placesByRoute[route.ID] = FallbackPlaces()
			continue
		}

		pois, err := s.placesRepo.SearchNearby(ctx, defaultSearchCenter, defaultSearchRadiusMeters, defaultSearchCategory)
		if err != nil {
			log.Printf("⚠️ ルート%s のスポット検索に失敗、空の結果として扱います: %v", route.ID, err)
			placesByRoute[route.ID] = []model.POI{}
			continue
		}
		placesByRoute[route.ID] = pois
	}

	state.PlacesByRoute = placesByRoute
}
