package cmtok

import (
	"fmt"
	"io"
)

// Dump 将单个 token 渲染为一行诊断文本: 种类, 区间, 以及它在
// 源缓冲区中覆盖的原文. 仅用于调试与追踪.
func Dump(w io.Writer, src []byte, tok Token) error {
	_, err := fmt.Fprintf(w, "%-9s [%d,%d) %q\n",
		string(tok.Tag), tok.Span.Start, tok.Span.End, tok.Lexeme(src))
	return err
}

// DumpAll renders every token in toks, one line each.
func DumpAll(w io.Writer, src []byte, toks []Token) error {
	for _, tok := range toks {
		if err := Dump(w, src, tok); err != nil {
			return err
		}
	}
	return nil
}

// TokenRecord 是 cmtokdump -json 输出的 token 形态.
// File 由调用方填写, 用于区分来自不同文件的 token.
type TokenRecord struct {
	File   string `json:"file,omitempty"`
	Tag    string `json:"tag"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Text   string `json:"text"`
	Symbol string `json:"symbol"`
}

// Records converts a token stream into its JSON-facing shape. Text
// fields alias src and must not outlive it unmodified.
func Records(src []byte, toks []Token) []TokenRecord {
	recs := make([]TokenRecord, 0, len(toks))
	for _, tok := range toks {
		recs = append(recs, TokenRecord{
			Tag:    string(tok.Tag),
			Start:  tok.Span.Start,
			End:    tok.Span.End,
			Text:   BytesToString(tok.Lexeme(src)),
			Symbol: tok.Tag.Symbol(),
		})
	}
	return recs
}
