package repository

import (
	"context"

	"tripster/internal/domain/model"
)

// PlacesRepository 周辺スポット検索プロバイダへのアクセスを抽象化する
type PlacesRepository interface {
	// SearchNearby 基準地点の周辺からカテゴリに合致するスポットを検索する
	SearchNearby(ctx context.Context, center model.LatLng, radiusMeters int, category string) ([]model.POI, error)
}
