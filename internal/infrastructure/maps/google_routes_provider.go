package maps

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"tripster/internal/domain/model"
	"tripster/internal/infrastructure/webapi"
)

// GoogleRoutesProvider はGoogle Maps Routes APIを使用した経路検索の実装
type GoogleRoutesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleRoutesProvider は新しいプロバイダを生成する
func NewGoogleRoutesProvider(apiKey string) *GoogleRoutesProvider {
	return &GoogleRoutesProvider{
		apiKey:     apiKey,
		baseURL:    "https://routes.googleapis.com/directions/v2:computeRoutes",
		httpClient: webapi.NewHTTPClient(),
	}
}

// FetchRoutes はRoutes APIを呼び出して代替ルート込みの候補ルートを取得する。
// 通信エラーやパース失敗は空の結果に変換し、エラーとしては返さない。
func (g *GoogleRoutesProvider) FetchRoutes(ctx context.Context, origin, destination string) ([]model.Route, error) {
	headers := map[string]string{
		"X-Goog-Api-Key": g.apiKey,
		"X-Goog-FieldMask": "routes.distanceMeters,routes.duration,routes.polyline.encodedPolyline," +
			"routes.description,routes.routeLabels",
	}
	body := computeRoutesRequest{
		Origin:                   waypoint{Address: origin},
		Destination:              waypoint{Address: destination},
		ComputeAlternativeRoutes: true,
		TravelMode:               "DRIVE",
	}

	var apiResp computeRoutesResponse
	if err := webapi.PostJSON(ctx, g.httpClient, g.baseURL, headers, body, &apiResp); err != nil {
		log.Printf("⚠️ Routes API呼び出しに失敗、空の結果として扱います: %v", err)
		return []model.Route{}, nil
	}

	// APIレスポンスにはid/labelが含まれないため、ドメインモデルへ正規化する
	routes := make([]model.Route, 0, len(apiResp.Routes))
	for i, r := range apiResp.Routes {
		routes = append(routes, model.Route{
			ID:              routeID(r, i),
			Label:           routeLabel(r, i),
			Polyline:        r.Polyline.EncodedPolyline,
			DistanceMeters:  r.DistanceMeters,
			DurationSeconds: parseDurationSeconds(r.Duration),
			Summary:         r.Description,
		})
	}
	return routes, nil
}

// routeID はrouteLabelsの先頭を小文字化してIDにする（無ければ位置ベース）
func routeID(r apiRoute, index int) string {
	if len(r.RouteLabels) > 0 && r.RouteLabels[0] != "" {
		return strings.ToLower(r.RouteLabels[0])
	}
	return fmt.Sprintf("route-%d", index+1)
}

func routeLabel(r apiRoute, index int) string {
	if r.Description != "" {
		return r.Description
	}
	return fmt.Sprintf("Route %d", index+1)
}

// parseDurationSeconds は"7200s"形式のduration文字列を秒数に変換する
func parseDurationSeconds(duration string) int {
	s := strings.TrimSuffix(duration, "s")
	if s == "" {
		return 0
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(value)
}

// --- Routes APIのリクエスト/レスポンスをパースするための構造体 ---

type computeRoutesRequest struct {
	Origin                   waypoint `json:"origin"`
	Destination              waypoint `json:"destination"`
	ComputeAlternativeRoutes bool     `json:"computeAlternativeRoutes"`
	TravelMode               string   `json:"travelMode"`
}

type waypoint struct {
	Address string `json:"address"`
}

type computeRoutesResponse struct {
	Routes []apiRoute `json:"routes"`
}

type apiRoute struct {
	DistanceMeters int             `json:"distanceMeters"`
	Duration       string          `json:"duration"` // 例: "7200s"
	Polyline       encodedPolyline `json:"polyline"`
	Description    string          `json:"description"`
	RouteLabels    []string        `json:"routeLabels"`
}

type encodedPolyline struct {
	EncodedPolyline string `json:"encodedPolyline"`
}
