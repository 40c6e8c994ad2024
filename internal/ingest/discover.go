package ingest

import (
	"os"
	"path/filepath"
	"strings"
)

type SourceFile struct {
	Path string
	Name string
}

// DiscoverSource 只看目录的直接子项：子目录跳过，扩展名不区分大小写。
// os.ReadDir 按文件名排序，结果顺序是确定的
func DiscoverSource(root, ext string) ([]SourceFile, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	out := make([]SourceFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.EqualFold(filepath.Ext(name), ext) {
			continue
		}
		out = append(out, SourceFile{
			Path: filepath.Join(root, name),
			Name: name,
		})
	}
	return out, nil
}
