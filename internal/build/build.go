package build

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"taggen/internal/domain/config"
	"taggen/internal/index"
	"taggen/internal/ingest"
)

type Builder struct {
	Cfg       config.Config
	IndexPath string
}

type Result struct {
	Tags     int
	Written  int
	Pruned   []string
	Warnings []ingest.Warning
}

func (b *Builder) Run(ctx context.Context) (*Result, error) {
	// 两个目录都得事先存在：源目录读得了，输出目录本工具从不代建
	if err := checkDir(b.Cfg.Source.Dir); err != nil {
		return nil, fmt.Errorf("source dir: %w", err)
	}
	if err := checkDir(b.Cfg.Output.Dir); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	posts, warns, err := ingest.Scan(b.Cfg.Source.Dir, b.Cfg.Source.Extension)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	log.Debug().Int("posts", len(posts)).Int("warnings", len(warns)).Msg("scan done")

	tags := Aggregate(posts)
	pages, err := Plan(tags, b.Cfg.Output.Extension)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("tags", len(tags)).Msg("plan done")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st, err := index.Open(index.OpenOptions{Path: b.IndexPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	defer st.Close()

	// 上一轮的产物清单要在重建之前拿出来，不然没法算哪些文件过期了
	previous, err := st.Outputs()
	if err != nil {
		return nil, fmt.Errorf("failed to read outputs manifest: %w", err)
	}

	if err := WriteAll(b.Cfg.Output.Dir, pages); err != nil {
		return nil, err
	}

	pruned, err := Prune(b.Cfg.Output.Dir, previous, pages)
	if err != nil {
		return nil, err
	}
	if len(pruned) > 0 {
		log.Debug().Strs("files", pruned).Msg("pruned stale tag files")
	}

	manifest := make(map[string]string, len(pages))
	for _, p := range pages {
		manifest[p.Filename] = p.Label
	}
	if err := st.Rebuild(tags, manifest); err != nil {
		return nil, fmt.Errorf("failed to rebuild index: %w", err)
	}

	return &Result{
		Tags:     len(tags),
		Written:  len(pages),
		Pruned:   pruned,
		Warnings: warns,
	}, nil
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
