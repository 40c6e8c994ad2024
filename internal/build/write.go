package build

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const tagFileBody = `---
layout: tag
title: "Posts For Tag: %s"
tag: %s
robots: noindex
sitemap: false
---
`

// RenderTagFile 输出固定格式的元数据块，两处都嵌标签原文（不是 slug）
func RenderTagFile(label string) []byte {
	return []byte(fmt.Sprintf(tagFileBody, label, label))
}

// WriteAll 逐个写出，已存在就覆盖；输出目录必须事先存在，这里不建
func WriteAll(outDir string, pages []Page) error {
	for _, p := range pages {
		full := filepath.Join(outDir, p.Filename)
		if err := os.WriteFile(full, RenderTagFile(p.Label), 0o644); err != nil {
			return fmt.Errorf("write tag file(%s): %w", p.Filename, err)
		}
	}
	return nil
}

// Prune 删掉上一轮清单里有、这一轮不再生成的文件。
// 只认清单里记录过的名字，目录里别的文件一律不碰
func Prune(outDir string, previous map[string]string, current []Page) ([]string, error) {
	keep := make(map[string]struct{}, len(current))
	for _, p := range current {
		keep[p.Filename] = struct{}{}
	}

	stale := make([]string, 0)
	for filename := range previous {
		if _, ok := keep[filename]; ok {
			continue
		}
		if filepath.Base(filename) != filename {
			continue
		}
		stale = append(stale, filename)
	}
	sort.Strings(stale)

	for _, filename := range stale {
		if err := os.Remove(filepath.Join(outDir, filename)); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("prune stale tag file(%s): %w", filename, err)
		}
	}
	return stale, nil
}
