package config

import (
	"log"
	"os"
)

// Config プロセス起動時に一度だけ読み込む設定。
// APIキーはどちらも任意で、未設定は異常ではなくフォールバックデータでの動作を意味する。
type Config struct {
	GoogleAPIKey string // 経路・スポット検索用（GOOGLE_API_KEY）
	GeminiAPIKey string // 説明文生成用（GEMINI_API_KEY）
	Port         string // HTTPサーバーのポート（PORT、デフォルト8080）
}

// Load 環境変数から設定を読み込む。キー未設定は警告のみで、エラーにはしない。
func Load() *Config {
	cfg := &Config{
		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Port:         os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if !cfg.HasGoogleAPIKey() {
		log.Printf("⚠️ GOOGLE_API_KEYが未設定のため、経路・スポットはフォールバックデータを使用します")
	}
	if !cfg.HasGeminiAPIKey() {
		log.Printf("⚠️ GEMINI_API_KEYが未設定のため、説明文はテンプレート文を使用します")
	}

	return cfg
}

// HasGoogleAPIKey 経路・スポット検索用のAPIキーが設定されているか
func (c *Config) HasGoogleAPIKey() bool {
	return c.GoogleAPIKey != ""
}

// HasGeminiAPIKey 説明文生成用のAPIキーが設定されているか
func (c *Config) HasGeminiAPIKey() bool {
	return c.GeminiAPIKey != ""
}
