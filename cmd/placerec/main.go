package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jinford/placerec/cmd/placerec/commands"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:  "placerec",
		Usage: "コンプリーションAPIを使ったおすすめスポット推薦CLI",
		Commands: []*cli.Command{
			{
				Name:  "recommend",
				Usage: "おすすめスポット推薦コマンド",
				Commands: []*cli.Command{
					{
						Name:  "completion",
						Usage: "レガシーコンプリーションAPIで推薦を取得",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
							&cli.StringFlag{
								Name:     "category",
								Usage:    "スポットのカテゴリ (例: coffee shop)",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "location",
								Usage:    "場所 (例: Shibuya)",
								Required: true,
							},
						},
						Action: commands.RecommendCompletionAction,
					},
					{
						Name:  "chat",
						Usage: "チャットコンプリーションAPIで推薦を取得",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "env",
								Usage: "環境変数ファイルパス",
								Value: ".env",
							},
							&cli.StringFlag{
								Name:     "category",
								Usage:    "スポットのカテゴリ (例: coffee shop)",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "location",
								Usage:    "場所 (例: Shibuya)",
								Required: true,
							},
						},
						Action: commands.RecommendChatAction,
					},
				},
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
