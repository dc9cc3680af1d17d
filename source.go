package cmtok

import (
	"fmt"
	"os"
)

// Terminate 返回 data 的一份拷贝, 末尾追加一个哨兵 0 字节.
// 调用方的切片不会被修改.
func Terminate(data []byte) []byte {
	buf := make([]byte, len(data)+1)
	copy(buf, data)
	return buf
}

// LoadFile reads a source file into memory and appends the sentinel
// terminator required by NewTokenizer.
func LoadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file %s: %w", path, err)
	}
	return Terminate(data), nil
}

// Tokenize drains a whole buffer (not yet sentinel-terminated) and
// returns every token up to and including the final EOF. Token spans
// index into data.
func Tokenize(data []byte) []Token {
	t := NewTokenizer(Terminate(data))
	var toks []Token
	for {
		tok := t.Next()
		toks = append(toks, tok)
		if tok.Tag == EOF {
			return toks
		}
	}
}

// CountInvalid 统计 token 流中 INVALID token 的数量.
// 词法分析器本身从不报错; 容忍多少个非法 token 由调用方决定.
func CountInvalid(toks []Token) int {
	n := 0
	for _, tok := range toks {
		if tok.Tag == INVALID {
			n++
		}
	}
	return n
}
