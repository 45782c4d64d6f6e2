package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinford/placerec/pkg/completion"
	"github.com/urfave/cli/v3"
)

// RecommendCompletionAction はレガシーコンプリーションAPIで推薦を取得するコマンドのアクション
func RecommendCompletionAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"))
	if err != nil {
		return err
	}

	return runRecommend(ctx, appCtx, "completion", cmd.String("category"), cmd.String("location"))
}

// RecommendChatAction はチャットコンプリーションAPIで推薦を取得するコマンドのアクション
func RecommendChatAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"))
	if err != nil {
		return err
	}

	return runRecommend(ctx, appCtx, "chat", cmd.String("category"), cmd.String("location"))
}

// runRecommend は入力を検証し、指定されたAPI形式で推薦を取得して表示する
// 空入力の検証はクライアントではなく呼び出し側（このレイヤ）の責務
func runRecommend(ctx context.Context, appCtx *AppContext, kind, category, location string) error {
	if strings.TrimSpace(location) == "" {
		return fmt.Errorf("場所が入力されていません")
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("カテゴリが入力されていません")
	}

	requestID := uuid.New().String()
	start := time.Now()

	appCtx.Logger.Info("推薦リクエストを開始",
		slog.String("request_id", requestID),
		slog.String("kind", kind),
		slog.String("category", category),
		slog.String("location", location),
	)

	result, err := requestByKind(ctx, appCtx.Client, kind, category, location)
	if err != nil {
		appCtx.Logger.Error("推薦リクエストに失敗",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("推薦の取得に失敗: %w", err)
	}

	appCtx.Logger.Info("推薦リクエストが完了",
		slog.String("request_id", requestID),
		slog.Duration("elapsed", time.Since(start)),
	)

	fmt.Print(result)

	return nil
}

// requestByKind はAPI形式に応じたリクエスト操作を呼び出す
func requestByKind(ctx context.Context, client completion.Client, kind, category, location string) (string, error) {
	switch kind {
	case "chat":
		return client.RequestChatCompletion(ctx, category, location)
	default:
		return client.RequestCompletion(ctx, category, location)
	}
}
