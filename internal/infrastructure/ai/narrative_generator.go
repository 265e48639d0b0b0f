package ai

import (
	"context"
	"fmt"
	"log"

	"tripster/internal/domain/repository"
)

// geminiNarrativeRepository はGemini APIを使用してNarrativeGenerationRepositoryを実装
type geminiNarrativeRepository struct {
	client *GeminiClient
}

// NewGeminiNarrativeRepository は新しいgeminiNarrativeRepositoryインスタンスを作成
func NewGeminiNarrativeRepository(client *GeminiClient) repository.NarrativeGenerationRepository {
	return &geminiNarrativeRepository{
		client: client,
	}
}

// GenerateNarrative はプロンプトからおすすめルートの説明文を生成する
func (g *geminiNarrativeRepository) GenerateNarrative(ctx context.Context, prompt string) (string, error) {
	log.Printf("🤖 Gemini APIで説明文を生成中...")

	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("Gemini API呼び出しエラー: %w", err)
	}

	log.Printf("✅ 説明文生成完了 (%d文字)", len(text))
	return text, nil
}
