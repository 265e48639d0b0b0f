package service

import "tripster/internal/domain/model"

// FallbackRoutes APIキー未設定時やプロバイダ障害時に使用する固定のルートセット。
// 呼び出しごとに同一の内容を返す（オフライン動作・テストで使用）。
func FallbackRoutes(origin, destination string) []model.Route {
	return []model.Route{
		{
			ID:              "fastest",
			Label:           "Fastest",
			Polyline:        "}_seFf|`uPd@w@`A_BvB}C",
			DistanceMeters:  190000,
			DurationSeconds: 7200,
			Summary:         "I-17 N",
		},
		{
			ID:              "scenic",
			Label:           "Scenic",
			Polyline:        "o`seFz{`uPp@jAb@l@",
			DistanceMeters:  210000,
			DurationSeconds: 8400,
			Summary:         "State Rte 179 through red rocks",
		},
	}
}

// FallbackPlaces APIキー未設定時に使用する固定のスポットセット
func FallbackPlaces() []model.POI {
	return []model.POI{
		{Name: "Oak Creek Canyon Vista", Categories: []string{"park"}, Rating: 4.7},
		{Name: "Red Rock State Park", Categories: []string{"park"}, Rating: 4.8},
	}
}
