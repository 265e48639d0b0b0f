package repository

import (
	"context"

	"tripster/internal/domain/model"
)

// RoutesRepository 経路検索プロバイダへのアクセスを抽象化する
type RoutesRepository interface {
	// FetchRoutes 出発地から目的地までの候補ルート（代替ルート含む）を取得する。
	// プロバイダ障害時は空スライスを返し、エラーは呼び出し側でフォールバックに変換される。
	FetchRoutes(ctx context.Context, origin, destination string) ([]model.Route, error)
}
