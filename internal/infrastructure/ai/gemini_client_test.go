package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiClient_GenerateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("candidatesからテキストを抽出", func(t *testing.T) {
		var gotReq GeminiRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "secret", r.URL.Query().Get("key"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"candidates": [
					{"content": {"parts": [{"text": "The Scenic route is gorgeous."}]}}
				]
			}`))
		}))
		defer server.Close()

		client := NewGeminiClient("secret")
		client.baseURL = server.URL

		text, err := client.GenerateContent(ctx, "describe the route")
		require.NoError(t, err)
		assert.Equal(t, "The Scenic route is gorgeous.", text)

		require.Len(t, gotReq.Contents, 1)
		require.Len(t, gotReq.Contents[0].Parts, 1)
		assert.Equal(t, "describe the route", gotReq.Contents[0].Parts[0].Text)
	})

	t.Run("candidatesが空の場合はエラー", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates": []}`))
		}))
		defer server.Close()

		client := NewGeminiClient("secret")
		client.baseURL = server.URL

		_, err := client.GenerateContent(ctx, "prompt")
		assert.Error(t, err)
	})

	t.Run("エラーステータスはエラーとして返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewGeminiClient("secret")
		client.baseURL = server.URL

		_, err := client.GenerateContent(ctx, "prompt")
		assert.Error(t, err)
	})
}

func TestGeminiNarrativeRepository_GenerateNarrative(t *testing.T) {
	t.Run("クライアント障害はエラーとして伝播しステージ側でフォールバックされる", func(t *testing.T) {
		client := NewGeminiClient("secret")
		client.baseURL = "http://127.0.0.1:1"

		repo := NewGeminiNarrativeRepository(client)
		_, err := repo.GenerateNarrative(context.Background(), "prompt")
		assert.Error(t, err)
	})
}
