package ingest

import (
	"os"
	"runtime"
	"sync"

	"taggen/internal/domain/content"
)

type Warning struct {
	Path string
	Msg  string
}

type Result struct {
	Post  content.PostTags
	Warns []Warning
	Skip  bool
}

// Scan 并发扫描 sourceDir 下所有匹配扩展名的文件，汇总每个文件的标签。
// 单个文件读失败只记 warning 跳过，不拖垮整轮；目录读不了才算致命。
// 聚合在所有扫描结束之后做，结果顺序不保证
func Scan(sourceDir, ext string) ([]content.PostTags, []Warning, error) {
	files, err := DiscoverSource(sourceDir, ext)
	if err != nil {
		return nil, nil, err
	}

	workers := runtime.GOMAXPROCS(0)
	jobs := make(chan SourceFile)
	results := make(chan Result)

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sf := range jobs {
				raw, readErr := os.ReadFile(sf.Path)
				if readErr != nil {
					results <- Result{
						Warns: []Warning{{Path: sf.Path, Msg: "failed to read: " + readErr.Error()}},
						Skip:  true,
					}
					continue
				}

				labels := content.NormalizeLabels(ScanTags(raw))
				if len(labels) == 0 {
					// 没有 front matter、没有 tags 行、或列表是空的：正常情况，不告警
					results <- Result{Skip: true}
					continue
				}

				results <- Result{Post: content.PostTags{
					Path:   sf.Name,
					Labels: labels,
				}}
			}
		}()
	}

	go func() {
		for _, f := range files {
			jobs <- f
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var posts []content.PostTags
	var warns []Warning
	for r := range results {
		if len(r.Warns) > 0 {
			warns = append(warns, r.Warns...)
		}
		if r.Skip {
			continue
		}
		posts = append(posts, r.Post)
	}
	return posts, warns, nil
}
