package service

import (
	"context"

	"tripster/internal/domain/model"
)

// TripStage 評価パイプラインの1ステージ。
// ステージは前段が書き込んだTripStateのフィールドを読み、自分の担当フィールドを書き込む。
// どのステージも必ず値を生成し（フォールバック込み）、失敗を外へ伝播しない。
type TripStage interface {
	// Name ステージ名（ログ用）
	Name() string

	// Execute TripStateを更新する
	Execute(ctx context.Context, state *model.TripState)
}
