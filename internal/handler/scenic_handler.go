package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripster/internal/domain/model"
	"tripster/internal/usecase"
)

// scenicModes 受け付けるシーニックモードの一覧（スコアには影響しない）
var scenicModes = map[string]bool{
	"balanced": true,
	"nature":   true,
	"water":    true,
	"desert":   true,
	"city":     true,
}

// ScenicHandler 景観ルート評価APIのハンドラー
type ScenicHandler struct {
	scenicUseCase usecase.ScenicTripUseCase
}

// NewScenicHandler 新しいScenicHandlerインスタンスを作成
func NewScenicHandler(scenicUseCase usecase.ScenicTripUseCase) *ScenicHandler {
	return &ScenicHandler{
		scenicUseCase: scenicUseCase,
	}
}

// PostScenicTrip 景観ルート評価を実行するエンドポイント
// POST /scenic
func (h *ScenicHandler) PostScenicTrip(c *gin.Context) {
	var req model.ScenicRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	response, err := h.scenicUseCase.Evaluate(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "ルート評価に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, response)
}

// validateRequest はリクエストの詳細バリデーションを行う
func (h *ScenicHandler) validateRequest(req *model.ScenicRequest) error {
	if req.Origin == "" {
		return &ValidationError{Field: "origin", Message: "出発地は必須です"}
	}
	if req.Destination == "" {
		return &ValidationError{Field: "destination", Message: "目的地は必須です"}
	}

	// シーニックモードのチェック（未指定の場合はbalanced扱い）
	if req.ScenicMode == "" {
		req.ScenicMode = "balanced"
	}
	if !scenicModes[req.ScenicMode] {
		return &ValidationError{Field: "scenicMode", Message: "scenicModeはbalanced/nature/water/desert/cityのいずれかを指定してください"}
	}

	return nil
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
