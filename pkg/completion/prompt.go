package completion

import "fmt"

// promptTemplate は推薦リクエストの固定プロンプトテンプレート
const promptTemplate = "What is a recommended %s near %s"

// BuildPrompt はカテゴリと場所から推薦プロンプトを組み立てる
// 入力の検証（空文字チェック等）は呼び出し側の責務
func BuildPrompt(category, location string) string {
	return fmt.Sprintf(promptTemplate, category, location)
}
