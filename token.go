package cmtok

import "fmt"

type Tag string

// Span 是 token 在源缓冲区中覆盖的半开区间 [Start, End).
type Span struct {
	Start int
	End   int
}

// Token 是一个不可变的值: 种类加上指向源缓冲区的字节区间.
// Token 本身不持有文本, 避免在词法分析阶段分配新字符串.
type Token struct {
	Tag  Tag
	Span Span
}

// Lexeme returns the exact bytes the token spans in src.
// The returned slice aliases src and must not be modified.
func (t Token) Lexeme(src []byte) []byte {
	return src[t.Span.Start:t.Span.End]
}

func (t Token) String() string {
	return fmt.Sprintf("Tag:%s, Span:[%d,%d)", t.Tag, t.Span.Start, t.Span.End)
}

const (
	INVALID   Tag = "INVALID"
	IDENT     Tag = "IDENT"
	STRING    Tag = "STRING"
	SEPARATOR Tag = "SEPARATOR"
	EOF       Tag = "EOF"
	LPAREN    Tag = "("
	RPAREN    Tag = ")"
)

// Symbol 返回用于诊断信息的可读名称, 例如 "expected an identifier, found ')'".
// LPAREN 和 RPAREN 有固定的文本形式, 其余种类只有符号名.
func (t Tag) Symbol() string {
	switch t {
	case INVALID:
		return "invalid bytes"
	case IDENT:
		return "an identifier"
	case STRING:
		return "a string"
	case SEPARATOR:
		return "separator"
	case EOF:
		return "EOF"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	}
	return string(t)
}
