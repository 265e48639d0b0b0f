package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripster/internal/domain/model"
)

// fakePlacesRepo テスト用のPlacesRepository実装。failOnCall番目の呼び出しで失敗する。
type fakePlacesRepo struct {
	pois       []model.POI
	failOnCall int // 1始まり、0なら常に成功
	calls      int
}

func (f *fakePlacesRepo) SearchNearby(ctx context.Context, center model.LatLng, radiusMeters int, category string) ([]model.POI, error) {
	f.calls++
	if f.failOnCall != 0 && f.calls == f.failOnCall {
		return nil, errors.New("provider failure")
	}
	return f.pois, nil
}

func TestPlaceEnrichmentStage_Execute(t *testing.T) {
	ctx := context.Background()
	routes := FallbackRoutes("Phoenix, AZ", "Sedona, AZ")

	t.Run("APIキー未設定時は固定スポットセット", func(t *testing.T) {
		stage := NewPlaceEnrichmentStage(nil)
		state := &model.TripState{Routes: routes}

		stage.Execute(ctx, state)

		require.Len(t, state.PlacesByRoute, 2)
		assert.Equal(t, FallbackPlaces(), state.PlacesByRoute["fastest"])
		assert.Equal(t, FallbackPlaces(), state.PlacesByRoute["scenic"])
	})

	t.Run("全ルートにエントリが作られる", func(t *testing.T) {
		repo := &fakePlacesRepo{pois: []model.POI{{Name: "Slide Rock State Park", Categories: []string{"park"}, Rating: 4.6}}}
		stage := NewPlaceEnrichmentStage(repo)
		state := &model.TripState{Routes: routes}

		stage.Execute(ctx, state)

		require.Len(t, state.PlacesByRoute, 2)
		assert.Equal(t, 2, repo.calls)
		assert.Len(t, state.PlacesByRoute["fastest"], 1)
		assert.Len(t, state.PlacesByRoute["scenic"], 1)
	})

	t.Run("1ルートの検索失敗は他ルートに影響しない", func(t *testing.T) {
		repo := &fakePlacesRepo{
			pois:       []model.POI{{Name: "Bell Rock", Categories: []string{"natural_feature"}, Rating: 4.8}},
			failOnCall: 1,
		}
		stage := NewPlaceEnrichmentStage(repo)
		state := &model.TripState{Routes: routes}

		stage.Execute(ctx, state)

		require.Len(t, state.PlacesByRoute, 2)
		assert.Empty(t, state.PlacesByRoute["fastest"])
		require.Len(t, state.PlacesByRoute["scenic"], 1)
		assert.Equal(t, "Bell Rock", state.PlacesByRoute["scenic"][0].Name)
	})

	t.Run("ルートが無い場合は空のマップ", func(t *testing.T) {
		stage := NewPlaceEnrichmentStage(nil)
		state := &model.TripState{}

		stage.Execute(ctx, state)

		assert.NotNil(t, state.PlacesByRoute)
		assert.Empty(t, state.PlacesByRoute)
	})
}
