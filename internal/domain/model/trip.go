package model

// TripState 評価パイプラインを流れる作業レコード。
// 各ステージは前段が書き込んだフィールドを読み、自分の担当フィールドだけを書き込む。
// 1回の評価が1つのTripStateを専有し、評価間での共有は行わない。
type TripState struct {
	Origin      string // 入力：出発地（エントリ時に一度だけ設定）
	Destination string // 入力：目的地（エントリ時に一度だけ設定）
	ScenicMode  string // 入力：シーニックモード（"balanced"など、スコアには影響しない）

	Routes        []Route            // RouteRetrievalが設定
	PlacesByRoute map[string][]POI   // PlaceEnrichmentが設定（キーはルートID）
	ScenicScores  map[string]float64 // ScenicScoringが設定（キーはルートID、値は0〜10）
	Explanation   string             // NarrativeExplanationが設定
}

// NewTripState 出発地と目的地だけが入った初期状態を作成
func NewTripState(origin, destination, scenicMode string) *TripState {
	return &TripState{
		Origin:      origin,
		Destination: destination,
		ScenicMode:  scenicMode,
	}
}

// ScenicRequest POST /scenic のリクエストボディ
type ScenicRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	ScenicMode  string `json:"scenicMode,omitempty"` // オプション：balanced|nature|water|desert|city
}

// RouteSummary レスポンスに含まれるルート1件分の要約
type RouteSummary struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Polyline    string  `json:"polyline"`
	ScenicScore float64 `json:"scenicScore"`
}

// ScenicTripResponse POST /scenic のレスポンスボディ
type ScenicTripResponse struct {
	Routes           []RouteSummary     `json:"routes"`
	Scores           map[string]float64 `json:"scores"`
	Explanation      string             `json:"explanation"`
	TopScenicRouteID *string            `json:"topScenicRouteId"` // ルートが無い場合はnull
	Timestamp        int64              `json:"timestamp"`        // Unix秒
}
