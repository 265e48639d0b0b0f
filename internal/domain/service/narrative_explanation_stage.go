package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"tripster/internal/domain/model"
	"tripster/internal/domain/repository"
)

// NoRoutesExplanation ルートが1件も無い場合の固定メッセージ
const NoRoutesExplanation = "No routes available."

// NarrativeExplanationStage おすすめルートの説明文を組み立てるステージ。
// 読み：Routes/ScenicScores/PlacesByRoute、書き：Explanation。
type NarrativeExplanationStage struct {
	narrativeRepo repository.NarrativeGenerationRepository // nilの場合はAPIキー未設定
}

// NewNarrativeExplanationStage 新しいNarrativeExplanationStageを作成（narrativeRepoはnil可）
func NewNarrativeExplanationStage(narrativeRepo repository.NarrativeGenerationRepository) *NarrativeExplanationStage {
	return &NarrativeExplanationStage{narrativeRepo: narrativeRepo}
}

func (s *NarrativeExplanationStage) Name() string { return "NarrativeExplanation" }

// Execute 最もスコアの高いルートの説明文をTripStateに設定する。
// 生成APIが未設定・失敗・不正応答の場合は固定テンプレート文にフォールバックし、
// このステージ自体は決して失敗しない。
func (s *NarrativeExplanationStage) Execute(ctx context.Context, state *model.TripState) {
	if len(state.Routes) == 0 {
		state.Explanation = NoRoutesExplanation
		return
	}

	top := TopRoute(state.Routes, state.ScenicScores)
	score := state.ScenicScores[top.ID]
	highlights := routeHighlights(state.PlacesByRoute[top.ID])
	fallback := fmt.Sprintf("This route scores %s/10 with highlights: %s.", formatScore(score), highlights)

	if s.narrativeRepo == nil {
		state.Explanation = fallback
		return
	}

	prompt := buildExplanationPrompt(top.Label, score, highlights)
	text, err := s.narrativeRepo.GenerateNarrative(ctx, prompt)
	if err != nil {
		log.Printf("⚠️ 説明文の生成に失敗、テンプレート文を使用します: %v", err)
		state.Explanation = fallback
		return
	}
	state.Explanation = text
}

// TopRoute スコアが最大のルートを返す。同点の場合はRoutes内で先に現れたものを選ぶ。
// スコア表に無いIDは0点として扱う。routesが空の場合はnil。
func TopRoute(routes []model.Route, scores map[string]float64) *model.Route {
	if len(routes) == 0 {
		return nil
	}
	top := &routes[0]
	for i := 1; i < len(routes); i++ {
		if scores[routes[i].ID] > scores[top.ID] {
			top = &routes[i]
		}
	}
	return top
}

// routeHighlights スポット名の先頭3件をカンマ区切りで連結する。
// スポットが無い場合は固定フレーズを返す。
func routeHighlights(places []model.POI) string {
	names := make([]string, 0, 3)
	for i, p := range places {
		if i >= 3 {
			break
		}
		names = append(names, p.Name)
	}
	highlights := strings.Join(names, ", ")
	if highlights == "" {
		return "parks and landmarks"
	}
	return highlights
}

// buildExplanationPrompt 説明文生成用のプロンプトを構築する
func buildExplanationPrompt(label string, score float64, highlights string) string {
	if label == "" {
		label = "Scenic"
	}
	return fmt.Sprintf(`You are Tripster, a travel guide.
The route '%s' scores %s/10.
It passes highlights like %s.
Explain in 2–3 friendly sentences why this route is scenic.`, label, formatScore(score), highlights)
}

// formatScore スコアを余分な末尾ゼロなしの10進表記にする（例: 7.5, 3.17）。
// 整数値は小数第1位まで表記する（例: 0.0, 3.0）。
func formatScore(score float64) string {
	if score == math.Trunc(score) {
		return strconv.FormatFloat(score, 'f', 1, 64)
	}
	return strconv.FormatFloat(score, 'f', -1, 64)
}
