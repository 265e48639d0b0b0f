package model

// Route 出発地から目的地までの候補ルートを表すモデル
type Route struct {
	ID              string `json:"id"`              // 評価内で一意のルートID（例: "fastest", "scenic"）
	Label           string `json:"label"`           // 表示用のルート名
	Polyline        string `json:"polyline"`        // エンコード済みポリライン（コア側ではデコードしない）
	DistanceMeters  int    `json:"distanceMeters"`  // 走行距離（プロバイダ依存、0の場合あり）
	DurationSeconds int    `json:"durationSeconds"` // 所要時間（プロバイダ依存、0の場合あり）
	Summary         string `json:"summary"`         // 経路の概要（例: "I-17 N"）
}
