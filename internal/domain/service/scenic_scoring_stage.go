package service

import (
	"context"
	"math"
	"strconv"

	"tripster/internal/domain/model"
)

// ScenicScoringStage 各ルートの景観スコアを算出するステージ。
// 読み：Routes/PlacesByRoute、書き：ScenicScores。
// 外部呼び出しも乱数も使わない純粋な変換で、同じ入力には常に同じ出力を返す。
type ScenicScoringStage struct{}

// NewScenicScoringStage 新しいScenicScoringStageを作成
func NewScenicScoringStage() *ScenicScoringStage {
	return &ScenicScoringStage{}
}

func (s *ScenicScoringStage) Name() string { return "ScenicScoring" }

// Execute ルートごとのスコアをTripStateに設定する
func (s *ScenicScoringStage) Execute(ctx context.Context, state *model.TripState) {
	scores := make(map[string]float64, len(state.Routes))
	for _, route := range state.Routes {
		scores[route.ID] = scorePlaces(state.PlacesByRoute[route.ID])
	}
	state.ScenicScores = scores
}

// scorePlaces スポット一覧から景観スコアを算出する。
// 公園・自然地形・観光名所の件数と平均評価値の重み付き和を0〜10に収め、
// 小数第2位に丸める。スポットが無い場合の平均評価値は0（分母の下限1で除算）。
func scorePlaces(places []model.POI) float64 {
	var parks, water, attractions int
	var ratingSum float64
	for _, p := range places {
		if p.HasCategory("park") {
			parks++
		}
		if p.HasCategory("natural_feature") {
			water++
		}
		if p.HasCategory("tourist_attraction") {
			attractions++
		}
		ratingSum += p.Rating
	}

	denominator := len(places)
	if denominator < 1 {
		denominator = 1
	}
	avgRating := ratingSum / float64(denominator)

	rawScore := 0.4*float64(parks) + 0.3*float64(water) + 0.2*float64(attractions) + 0.5*avgRating
	return roundScore(math.Min(10.0, rawScore))
}

// roundScore スコアを小数第2位に丸める。
// 100倍してからRoundすると3.175近傍の値（2進では3.17499...）が317.5に
// 繰り上がって3.18になってしまうため、10進文字列経由で丸める。
func roundScore(score float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(score, 'f', 2, 64), 64)
	return rounded
}
