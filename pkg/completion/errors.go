package completion

import (
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
)

var (
	// ErrAPIKeyNotSet はAPIキーが空または空白のみの場合のエラー
	ErrAPIKeyNotSet = errors.New("API key not set")

	// ErrNotInitialized はNewOpenAIClientを経由せずにクライアントを使用した場合のエラー
	ErrNotInitialized = errors.New("completion client not initialized")

	// ErrEmptyResponse はプロバイダが候補を1件も返さなかった場合のエラー
	ErrEmptyResponse = errors.New("provider returned no choices")
)

// ProviderError はプロバイダAPI呼び出しの失敗を表すエラー
// 上流のHTTPステータスコードとメッセージを保持する
type ProviderError struct {
	// StatusCode は上流のHTTPステータスコード（トランスポート障害時は0）
	StatusCode int

	// Message は上流から返されたエラーメッセージ
	Message string

	// Err は元のエラー
	Err error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider request failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider request failed: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// newProviderError はSDKのエラーからProviderErrorを構築する
func newProviderError(err error) *ProviderError {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &ProviderError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Err:        err,
		}
	}

	return &ProviderError{
		Message: err.Error(),
		Err:     err,
	}
}
