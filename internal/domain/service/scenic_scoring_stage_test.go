package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripster/internal/domain/model"
)

func TestScenicScoringStage_Execute(t *testing.T) {
	stage := NewScenicScoringStage()
	ctx := context.Background()

	t.Run("フォールバックデータのスコア算出", func(t *testing.T) {
		state := &model.TripState{
			Routes: FallbackRoutes("Phoenix, AZ", "Sedona, AZ"),
			PlacesByRoute: map[string][]model.POI{
				"fastest": FallbackPlaces(),
				"scenic":  FallbackPlaces(),
			},
		}

		stage.Execute(ctx, state)

		require.Len(t, state.ScenicScores, 2)
		// parks=2, avgRating=4.75 → 0.4*2 + 0.5*4.75 = 3.175 → 3.17
		assert.Equal(t, 3.17, state.ScenicScores["fastest"])
		assert.Equal(t, 3.17, state.ScenicScores["scenic"])
	})

	t.Run("同じ入力には常に同じ出力", func(t *testing.T) {
		placesByRoute := map[string][]model.POI{
			"fastest": {
				{Name: "Viewpoint", Categories: []string{"tourist_attraction"}, Rating: 4.2},
				{Name: "Creek", Categories: []string{"natural_feature"}, Rating: 4.9},
			},
		}
		state1 := &model.TripState{
			Routes:        []model.Route{{ID: "fastest"}},
			PlacesByRoute: placesByRoute,
		}
		state2 := &model.TripState{
			Routes:        []model.Route{{ID: "fastest"}},
			PlacesByRoute: placesByRoute,
		}

		stage.Execute(ctx, state1)
		stage.Execute(ctx, state2)

		assert.Equal(t, state1.ScenicScores, state2.ScenicScores)
	})

	t.Run("スポットが無いルートはスコア0", func(t *testing.T) {
		state := &model.TripState{
			Routes:        []model.Route{{ID: "empty"}},
			PlacesByRoute: map[string][]model.POI{"empty": {}},
		}

		stage.Execute(ctx, state)

		assert.Equal(t, 0.0, state.ScenicScores["empty"])
	})

	t.Run("スコア表エントリが無いルートも0扱い", func(t *testing.T) {
		state := &model.TripState{
			Routes:        []model.Route{{ID: "missing"}},
			PlacesByRoute: map[string][]model.POI{},
		}

		stage.Execute(ctx, state)

		assert.Equal(t, 0.0, state.ScenicScores["missing"])
	})
}

func TestScorePlaces(t *testing.T) {
	t.Run("3.175近傍の丸めは10進で行い3.17になる", func(t *testing.T) {
		// parks=2, avgRating=4.75 → 0.8 + 2.375 = 3.175（2進では3.17499...）
		assert.Equal(t, 3.17, scorePlaces(FallbackPlaces()))
	})

	t.Run("スコアは10で頭打ち", func(t *testing.T) {
		places := make([]model.POI, 0, 30)
		for i := 0; i < 30; i++ {
			places = append(places, model.POI{
				Name:       "Park",
				Categories: []string{"park", "natural_feature", "tourist_attraction"},
				Rating:     5.0,
			})
		}

		assert.Equal(t, 10.0, scorePlaces(places))
	})

	t.Run("複数カテゴリのスポットは全項目にカウント", func(t *testing.T) {
		places := []model.POI{
			{Name: "Red Rock Overlook", Categories: []string{"park", "natural_feature"}, Rating: 4.0},
		}

		// parks=1, water=1, attractions=0, avg=4.0 → 0.4 + 0.3 + 2.0 = 2.7
		assert.Equal(t, 2.7, scorePlaces(places))
	})

	t.Run("評価値なしは0として平均に含める", func(t *testing.T) {
		places := []model.POI{
			{Name: "Rated", Categories: []string{"park"}, Rating: 4.0},
			{Name: "Unrated", Categories: []string{"park"}},
		}

		// parks=2, avg=(4.0+0)/2=2.0 → 0.8 + 1.0 = 1.8
		assert.Equal(t, 1.8, scorePlaces(places))
	})

	t.Run("空のスポット一覧でもゼロ除算しない", func(t *testing.T) {
		assert.Equal(t, 0.0, scorePlaces(nil))
		assert.Equal(t, 0.0, scorePlaces([]model.POI{}))
	})
}
