package maps

import (
	"fmt"

	"github.com/paulmach/orb"

	"tripster/internal/domain/model"
)

// LatLngToPoint model.LatLng を orb.Point に変換（orbは[lng, lat]順）
func LatLngToPoint(latLng model.LatLng) orb.Point {
	return orb.Point{latLng.Lng, latLng.Lat}
}

// FormatLatLng Places APIのlocationパラメータ形式（"lat,lng"）に変換
func FormatLatLng(latLng model.LatLng) string {
	point := LatLngToPoint(latLng)
	return fmt.Sprintf("%.4f,%.4f", point.Lat(), point.Lon())
}
