package completion

import (
	"context"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const (
	// DefaultCompletionModel はレガシーコンプリーション用のデフォルトモデル
	DefaultCompletionModel = "gpt-3.5-turbo-instruct"

	// DefaultChatModel はチャットコンプリーション用のデフォルトモデル
	DefaultChatModel = "gpt-3.5-turbo"

	// DefaultMaxTokens は生成する最大トークン数のデフォルト値
	DefaultMaxTokens = 256

	// DefaultTimeout はAPI呼び出しのデフォルトタイムアウト
	DefaultTimeout = 60 * time.Second
)

// Config はOpenAIClientの設定
// 構築後は変更されない。APIキーとエンドポイントは並行リクエストから
// 読み取り専用で共有されるため、ロックは不要
type Config struct {
	// APIKey はプロバイダの認証キー（必須）
	APIKey string

	// BaseURL はAPIエンドポイントの上書き先
	// 空の場合はプロバイダのデフォルト公開ホストを使用する
	BaseURL string

	// CompletionModel はレガシーコンプリーション用モデル（省略時はデフォルト）
	CompletionModel string

	// ChatModel はチャットコンプリーション用モデル（省略時はデフォルト）
	ChatModel string

	// MaxTokens は生成する最大トークン数（0以下の場合はデフォルト）
	MaxTokens int

	// Temperature は生成の多様性を制御する (0.0-2.0)
	Temperature float64

	// Timeout はAPI呼び出しのタイムアウト（0の場合はデフォルト）
	Timeout time.Duration

	// TrimCutset は各候補の先頭から取り除く文字集合（空の場合はデフォルト）
	TrimCutset string
}

// OpenAIClient はOpenAI APIを使用したClient実装
// ゼロ値は使用不可。必ずNewOpenAIClientで構築する
type OpenAIClient struct {
	api             openai.Client
	completionModel string
	chatModel       string
	maxTokens       int
	temperature     float64
	timeout         time.Duration
	trimCutset      string
	initialized     bool
}

// NewOpenAIClient は設定を検証してOpenAIClientを作成する
// ネットワークアクセスは行わない
// APIキーが空または空白のみの場合はErrAPIKeyNotSetを返す
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrAPIKeyNotSet
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// この層では自動リトライを行わない（SDKのデフォルトを無効化）
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	completionModel := cfg.CompletionModel
	if completionModel == "" {
		completionModel = DefaultCompletionModel
	}

	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	trimCutset := cfg.TrimCutset
	if trimCutset == "" {
		trimCutset = DefaultTrimCutset
	}

	return &OpenAIClient{
		api:             openai.NewClient(opts...),
		completionModel: completionModel,
		chatModel:       chatModel,
		maxTokens:       maxTokens,
		temperature:     cfg.Temperature,
		timeout:         timeout,
		trimCutset:      trimCutset,
		initialized:     true,
	}, nil
}

// CompletionModelName はレガシーコンプリーション用モデル名を返す
func (c *OpenAIClient) CompletionModelName() string {
	return c.completionModel
}

// ChatModelName はチャットコンプリーション用モデル名を返す
func (c *OpenAIClient) ChatModelName() string {
	return c.chatModel
}

// RequestCompletion はレガシーのテキストコンプリーションAPIで推薦を取得する
// 返された全候補を1候補1行に畳み込んだ文字列を返す
// 失敗時のリトライは行わず、エラーをそのまま呼び出し側へ返す
func (c *OpenAIClient) RequestCompletion(ctx context.Context, category, location string) (string, error) {
	if !c.initialized {
		return "", ErrNotInitialized
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := openai.CompletionNewParams{
		Model: openai.CompletionNewParamsModel(c.completionModel),
		Prompt: openai.CompletionNewParamsPromptUnion{
			OfString: openai.String(BuildPrompt(category, location)),
		},
		MaxTokens:   openai.Int(int64(c.maxTokens)),
		Temperature: openai.Float(c.temperature),
	}

	resp, err := c.api.Completions.New(ctx, params)
	if err != nil {
		return "", newProviderError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Message: ErrEmptyResponse.Error(), Err: ErrEmptyResponse}
	}

	choices := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		choices = append(choices, choice.Text)
	}

	return ReduceChoices(choices, c.trimCutset), nil
}

// RequestChatCompletion はチャットコンプリーションAPIで推薦を取得する
// ユーザーロールの単一メッセージのみを送信し、候補を1件だけ要求する
// 会話履歴は保持せず、毎回の呼び出しが独立したステートレスなリクエストとなる
func (c *OpenAIClient) RequestChatCompletion(ctx context.Context, category, location string) (string, error) {
	if !c.initialized {
		return "", ErrNotInitialized
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.chatModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(BuildPrompt(category, location)),
		},
		MaxTokens:   openai.Int(int64(c.maxTokens)),
		Temperature: openai.Float(c.temperature),
		N:           openai.Int(1),
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", newProviderError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Message: ErrEmptyResponse.Error(), Err: ErrEmptyResponse}
	}

	choices := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		choices = append(choices, choice.Message.Content)
	}

	return ReduceChoices(choices, c.trimCutset), nil
}

// インターフェース実装の確認
var _ Client = (*OpenAIClient)(nil)
