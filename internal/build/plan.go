package build

import (
	"sort"
	"strings"

	"taggen/internal/domain/content"
	domainerr "taggen/internal/domain/errors"
)

type Page struct {
	Label    string
	Slug     string
	Filename string
}

// Slugify 的规则就两条：小写化、空格换连字符，其余字符原样保留。
// 所以 "PHP" 和 "php"、"Web Scraping" 和 "Web-Scraping" 会撞出同一个文件名，
// 撞车在 Plan 里兜底
func Slugify(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "-")
}

// Aggregate 把逐文件的标签合并成全局记录：Label 升序，
// Posts 是贡献过这个标签的文件名（排好序），Count = len(Posts)
func Aggregate(posts []content.PostTags) []content.Tag {
	byLabel := make(map[string][]string)
	for _, p := range posts {
		for _, l := range p.Labels {
			byLabel[l] = append(byLabel[l], p.Path)
		}
	}

	labels := make([]string, 0, len(byLabel))
	for l := range byLabel {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	out := make([]content.Tag, 0, len(labels))
	for _, l := range labels {
		files := byLabel[l]
		sort.Strings(files)
		out = append(out, content.Tag{
			Label: l,
			Slug:  Slugify(l),
			Count: len(files),
			Posts: files,
		})
	}
	return out
}

// Plan 给每个标签排一个输出文件。两个标签算出同一个文件名属于配置冲突：
// 整轮失败，一个文件都不写，错误里把每组撞车的标签都列出来
func Plan(tags []content.Tag, ext string) ([]Page, error) {
	pages := make([]Page, 0, len(tags))
	byFile := make(map[string][]string, len(tags))

	for _, tg := range tags {
		filename := tg.Slug + ext
		byFile[filename] = append(byFile[filename], tg.Label)
		pages = append(pages, Page{
			Label:    tg.Label,
			Slug:     tg.Slug,
			Filename: filename,
		})
	}

	var ce domainerr.CollisionError
	seen := make(map[string]struct{})
	for _, p := range pages {
		labels := byFile[p.Filename]
		if len(labels) < 2 {
			continue
		}
		if _, ok := seen[p.Filename]; ok {
			continue
		}
		seen[p.Filename] = struct{}{}
		ce.Add(p.Filename, labels)
	}
	if ce.HasAny() {
		return nil, ce
	}
	return pages, nil
}
