package completion

import "strings"

// DefaultTrimCutset はデフォルトで各候補の先頭から取り除く文字集合
// 一部モデルが候補の先頭に改行や疑問符を出力する挙動への対処であり、
// 汎用的な契約ではないため Config.TrimCutset で上書きできる
const DefaultTrimCutset = "\n?"

// ReduceChoices はプロバイダの複数候補を1つの表示用文字列に畳み込む
// 各候補の先頭からcutsetに含まれる文字を取り除き、1候補1行で連結する
// 先頭以外の文字（末尾の句読点等）は保持される
//
// レスポンス形式の変換をこの純粋関数に隔離することで、
// プロバイダ側のレスポンス形式変更の影響をこの境界に閉じ込める
func ReduceChoices(choices []string, cutset string) string {
	var b strings.Builder

	for _, choice := range choices {
		b.WriteString(strings.TrimLeft(choice, cutset))
		b.WriteString("\n")
	}

	return b.String()
}
