package model

// Kind 表示走査結果の種別（釣り合い／構造違反）。
type Kind string

const (
	KindBalanced     Kind = "balanced"
	KindExtraClosing Kind = "extra_closing"
	KindMismatched   Kind = "mismatched"
	KindUnclosed     Kind = "unclosed"
)

// BracketRef は 1 個の括弧の出現位置を表します。
// Line は 1 始まり、Col は行内の 0 始まりの文字オフセットです。
type BracketRef struct {
	Char string `json:"char"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
}

// Opening は開き括弧かどうかを判定します。
func Opening(r rune) bool {
	return r == '(' || r == '[' || r == '{'
}

// Closing は閉じ括弧かどうかを判定します。
func Closing(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

// OpenerFor は閉じ括弧に対応する開き括弧を返します。
// 閉じ括弧以外を渡した場合は 0 を返します。
func OpenerFor(r rune) rune {
	switch r {
	case ')':
		return '('
	case ']':
		return '['
	case '}':
		return '{'
	default:
		return 0
	}
}
