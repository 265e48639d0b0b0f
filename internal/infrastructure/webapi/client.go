package webapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout 外部API呼び出しの共通タイムアウト
const DefaultTimeout = 15 * time.Second

// NewHTTPClient 共通タイムアウト付きのHTTPクライアントを作成
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// PostJSON JSONボディをPOSTしてレスポンスをoutにデコードする。
// 通信エラー・非2xxステータス・パース失敗はすべてエラーとして返し、
// 呼び出し側（プロバイダ実装）が空の結果に変換する。
func PostJSON(ctx context.Context, client *http.Client, reqURL string, headers map[string]string, body interface{}, out interface{}) error {
	reqBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("リクエストのシリアライズに失敗: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("HTTPリクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return do(client, req, out)
}

// GetJSON クエリパラメータ付きでGETしてレスポンスをoutにデコードする
func GetJSON(ctx context.Context, client *http.Client, baseURL string, params url.Values, out interface{}) error {
	reqURL := baseURL
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", baseURL, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("HTTPリクエストの作成に失敗: %w", err)
	}

	return do(client, req, out)
}

func do(client *http.Client, req *http.Request, out interface{}) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("JSONのパースに失敗: %w", err)
	}
	return nil
}
