package model

// LatLng 緯度経度を表す基本的な型（周辺スポット検索などで使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// POI Point of Interest（ルート沿いのスポット）を表すモデル
type POI struct {
	Name       string   `json:"name"`       // スポット名
	Categories []string `json:"categories"` // カテゴリ（複数対応）
	Rating     float64  `json:"rating"`     // 評価値（未評価の場合は0）
}

// HasCategory 指定されたカテゴリが含まれているかチェック
func (p *POI) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}
