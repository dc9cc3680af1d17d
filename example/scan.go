package main

import (
	"os"

	"github.com/WJQSERVER/cmtok"
)

var script = []byte(`# minimal build script
project(demo)

add_executable(demo src/main.c src/util.c)
target_link_libraries(demo m)
`)

func main() {
	// 逐个拉取 token
	src := cmtok.Terminate(script)
	tz := cmtok.NewTokenizer(src)
	for {
		tok := tz.Next()
		if err := cmtok.Dump(os.Stdout, src, tok); err != nil {
			panic(err)
		}
		if tok.Tag == cmtok.EOF {
			break
		}
	}
}
