package repository

import "context"

// NarrativeGenerationRepository 説明文の生成を抽象化する
type NarrativeGenerationRepository interface {
	// GenerateNarrative プロンプトからおすすめルートの説明文を生成する
	GenerateNarrative(ctx context.Context, prompt string) (string, error)
}
