package main

import (
	"errors"
	"os"

	"taggen/internal/cli"
	domainerr "taggen/internal/domain/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		// 配置问题退 2，跑的过程中出错退 1
		if errors.Is(err, domainerr.ErrInvalid) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
