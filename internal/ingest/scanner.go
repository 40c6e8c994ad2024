package ingest

import (
	"bytes"
	"strings"
)

const tagsPrefix = "tags:"

var frontMatterMark = []byte("---")

// ScanTags 从原始内容里提取第一条 tags: 声明。
// 逐行扫描，行去空白后恰好等于 "---" 就翻转 inside 标志；
// 块关闭时还没碰到 tags: 行，这个文件就不贡献任何标签。
// 标志在文件任何位置都会翻转，不只是开头——这是原有行为，保留
func ScanTags(raw []byte) []string {
	// 统一换行符
	norm := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	norm = bytes.ReplaceAll(norm, []byte("\r"), []byte("\n"))

	inside := false
	for _, line := range bytes.Split(norm, []byte("\n")) {
		trimmed := bytes.TrimSpace(line)
		if bytes.Equal(trimmed, frontMatterMark) {
			if inside {
				return nil
			}
			inside = true
			continue
		}
		if !inside {
			continue
		}
		if bytes.HasPrefix(trimmed, []byte(tagsPrefix)) {
			// 找到第一条就收工，后面的行不看了
			return SplitTagsLine(string(trimmed))
		}
	}
	return nil
}

// SplitTagsLine 去掉 tags: 前缀和所有方括号，按逗号切分，逐段去空白。
// 引号里的逗号、跨行的列表一概不管，行里写什么就切什么
func SplitTagsLine(line string) []string {
	rest := strings.TrimPrefix(strings.TrimSpace(line), tagsPrefix)
	rest = strings.ReplaceAll(rest, "[", "")
	rest = strings.ReplaceAll(rest, "]", "")

	pieces := strings.Split(rest, ",")
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
