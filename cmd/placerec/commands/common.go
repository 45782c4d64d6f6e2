package commands

import (
	"fmt"
	"log/slog"

	"github.com/jinford/placerec/internal/platform/logger"
	"github.com/jinford/placerec/pkg/completion"
	"github.com/jinford/placerec/pkg/config"
)

// AppContext はコマンド実行に必要な共通コンテキストを保持する
// クライアントはここで一度だけ構築し、各コマンドへ引数として渡す
// （グローバルなシングルトンは持たない）
type AppContext struct {
	Config *config.Config
	Client completion.Client
	Logger *slog.Logger
}

// NewAppContext は設定を読み込み、コンプリーションクライアントを構築して
// AppContext を作成する
func NewAppContext(envFile string) (*AppContext, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("設定の読み込みに失敗: %w", err)
	}

	appLogger := logger.New(logger.ConfigFrom(cfg.Log.Level, cfg.Log.Format))

	client, err := completion.NewOpenAIClient(completion.Config{
		APIKey:          cfg.OpenAI.APIKey,
		BaseURL:         cfg.OpenAI.BaseURL,
		CompletionModel: cfg.OpenAI.CompletionModel,
		ChatModel:       cfg.OpenAI.ChatModel,
		MaxTokens:       cfg.OpenAI.MaxTokens,
		Temperature:     cfg.OpenAI.Temperature,
		Timeout:         cfg.OpenAI.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("クライアントの初期化に失敗: %w", err)
	}

	return &AppContext{
		Config: cfg,
		Client: client,
		Logger: appLogger,
	}, nil
}
