package maps

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"tripster/internal/domain/model"
	"tripster/internal/infrastructure/webapi"
)

// GooglePlacesProvider はGoogle Places APIを使用した周辺スポット検索の実装
type GooglePlacesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGooglePlacesProvider は新しいプロバイダを生成する
func NewGooglePlacesProvider(apiKey string) *GooglePlacesProvider {
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		baseURL:    "https://maps.googleapis.com/maps/api/place/nearbysearch/json",
		httpClient: webapi.NewHTTPClient(),
	}
}

// SearchNearby は基準地点の周辺からカテゴリに合致するスポットを検索する。
// 通信エラーやパース失敗は空の結果に変換し、エラーとしては返さない。
func (g *GooglePlacesProvider) SearchNearby(ctx context.Context, center model.LatLng, radiusMeters int, category string) ([]model.POI, error) {
	params := url.Values{}
	params.Set("location", FormatLatLng(center))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", category)
	params.Set("key", g.apiKey)

	var apiResp nearbySearchResponse
	if err := webapi.GetJSON(ctx, g.httpClient, g.baseURL, params, &apiResp); err != nil {
		log.Printf("⚠️ Places API呼び出しに失敗、空の結果として扱います: %v", err)
		return []model.POI{}, nil
	}

	pois := make([]model.POI, 0, len(apiResp.Results))
	for _, p := range apiResp.Results {
		pois = append(pois, model.POI{
			Name:       p.Name,
			Categories: p.Types,
			Rating:     p.Rating,
		})
	}
	return pois, nil
}

// --- Places APIのレスポンスをパースするための構造体 ---

type nearbySearchResponse struct {
	Results []nearbyPlace `json:"results"`
	Status  string        `json:"status"`
}

type nearbyPlace struct {
	Name   string   `json:"name"`
	Types  []string `json:"types"`
	Rating float64  `json:"rating"`
}
