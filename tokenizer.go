package cmtok

import "bytes"

// position 区分两种词法上下文: 命令位置与参数位置.
// 同样的字节序列在两种位置下会被归为不同的 token 种类.
type position int

const (
	atCommand  position = iota // parenDepth == 0
	atArgument                 // parenDepth > 0
)

// Tokenizer 是覆盖在不可变缓冲区上的可变游标.
// input 必须以一个哨兵 0 字节结尾, 该字节不计入逻辑长度;
// 真正的输入结束通过位置而非字节值来判断, 因此嵌入的 0 字节
// 会作为 INVALID token 被报告, 而不是静默截断.
type Tokenizer struct {
	input      []byte
	index      int
	parenDepth int
}

var bom = []byte{0xEF, 0xBB, 0xBF}

// NewTokenizer 从一个以哨兵结尾的缓冲区构造 Tokenizer.
// 若缓冲区以 UTF-8 BOM 开头, 游标直接跳过它.
func NewTokenizer(input []byte) *Tokenizer {
	t := &Tokenizer{input: input}
	if t.end() >= len(bom) && bytes.HasPrefix(input, bom) {
		t.index = len(bom)
	}
	return t
}

// end 返回逻辑结束位置, 即哨兵字节所在的下标.
func (t *Tokenizer) end() int {
	return len(t.input) - 1
}

// Next returns the next token and advances the cursor. Once the logical
// end is reached it keeps returning the same zero-length EOF token.
// Malformed bytes never abort the scan; each becomes a one-byte INVALID
// token and scanning continues.
func (t *Tokenizer) Next() Token {
	pos := atCommand
	if t.parenDepth > 0 {
		pos = atArgument
	}

	// Skip content that produces no token: line comments, whitespace runs
	// at command position, and whitespace runs that end at EOF or right
	// before ')'. A surfaced separator run returns from inside the loop.
	for t.index < t.end() {
		c := t.input[t.index]
		if c == '#' {
			t.skipLineComment()
			continue
		}
		if !isSpace(c) {
			break
		}
		if pos == atCommand {
			t.index++
			continue
		}
		if tok, ok := t.readSeparator(); ok {
			return tok
		}
	}

	if t.index >= t.end() {
		return Token{Tag: EOF, Span: Span{Start: t.end(), End: t.end()}}
	}

	c := t.input[t.index]
	switch {
	case isAlpha(c):
		if pos == atCommand {
			return t.readIdentifier()
		}
		return t.readArgument()
	case isDigit(c) || c == '/':
		// 命令名不能以数字或斜杠开头, 参数可以 (路径, 数字标志等).
		if pos == atCommand {
			return t.readInvalid()
		}
		return t.readArgument()
	case c == '(':
		t.parenDepth++
		t.index++
		return Token{Tag: LPAREN, Span: Span{Start: t.index - 1, End: t.index}}
	case c == ')':
		if t.parenDepth == 0 {
			// 多余的右括号: 深度保持为 0, 不下溢.
			return t.readInvalid()
		}
		t.parenDepth--
		t.index++
		return Token{Tag: RPAREN, Span: Span{Start: t.index - 1, End: t.index}}
	default:
		return t.readInvalid()
	}
}

// readIdentifier 在命令位置读取一个裸词命令名.
func (t *Tokenizer) readIdentifier() Token {
	start := t.index
	for t.index < t.end() && isAlpha(t.input[t.index]) {
		t.index++
	}
	return Token{Tag: IDENT, Span: Span{Start: start, End: t.index}}
}

// readArgument 在参数位置读取一个自由形式的字符串 token.
func (t *Tokenizer) readArgument() Token {
	start := t.index
	for t.index < t.end() && isArgumentChar(t.input[t.index]) {
		t.index++
	}
	return Token{Tag: STRING, Span: Span{Start: start, End: t.index}}
}

// readSeparator consumes a whitespace run at argument position. The run
// is surfaced as a SEPARATOR token unless it ends at EOF or immediately
// before ')'; in those cases it is discarded and ok is false.
func (t *Tokenizer) readSeparator() (Token, bool) {
	start := t.index
	for t.index < t.end() && isSpace(t.input[t.index]) {
		t.index++
	}
	if t.index >= t.end() || t.input[t.index] == ')' {
		return Token{}, false
	}
	return Token{Tag: SEPARATOR, Span: Span{Start: start, End: t.index}}, true
}

// skipLineComment 消耗注释字节直到行尾或输入结束, 不产生 token.
// 结尾的换行符属于注释本身, 一并消耗 (\r\n 算作一个行尾);
// 下一个 token 从换行符之后开始.
func (t *Tokenizer) skipLineComment() {
	for t.index < t.end() && t.input[t.index] != '\n' && t.input[t.index] != '\r' {
		t.index++
	}
	if t.index < t.end() && t.input[t.index] == '\r' {
		t.index++
	}
	if t.index < t.end() && t.input[t.index] == '\n' {
		t.index++
	}
}

func (t *Tokenizer) readInvalid() Token {
	t.index++
	return Token{Tag: INVALID, Span: Span{Start: t.index - 1, End: t.index}}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isArgumentChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '.' || c == '/'
}
