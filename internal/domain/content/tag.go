package content

import "strings"

// PostTags 是单个源文件扫描出来的结果
type PostTags struct {
	Path   string
	Labels []string
}

// Tag 是聚合后的标签记录，Count == len(Posts)
type Tag struct {
	Label string
	Slug  string
	Count int
	Posts []string
}

// NormalizeLabels 去空白、丢空串、按首次出现去重；不做大小写折叠，
// "PHP" 和 "php" 是两个不同的标签
func NormalizeLabels(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
