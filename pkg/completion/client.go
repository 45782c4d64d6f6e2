package completion

import "context"

// Client は推薦コンプリーションクライアントを抽象化するインターフェース
// 2つの操作はプロバイダの2つのAPI形式（レガシーの単発コンプリーションと
// チャット形式コンプリーション）に対応する
// モデルファミリーの選択は呼び出し側の責務であるため、意図的に1つの操作へ統合しない
type Client interface {
	// RequestCompletion はレガシーのテキストコンプリーションAPIで推薦を取得する
	RequestCompletion(ctx context.Context, category, location string) (string, error)

	// RequestChatCompletion はチャットコンプリーションAPIで推薦を取得する
	// 会話履歴は保持せず、毎回単一のユーザーメッセージのみを送信する
	RequestChatCompletion(ctx context.Context, category, location string) (string, error)
}
