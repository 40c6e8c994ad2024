package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	domainerr "taggen/internal/domain/errors"
)

type Config struct {
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
	Index  IndexConfig  `yaml:"index"`
}

type SourceConfig struct {
	Dir       string `yaml:"dir"`
	Extension string `yaml:"extension"`
}

type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Extension string `yaml:"extension"`
}

type IndexConfig struct {
	Path string `yaml:"path"`
}

func Default() Config {
	return Config{
		Source: SourceConfig{
			Dir:       "_posts",
			Extension: ".md",
		},
		Output: OutputConfig{
			Dir:       "tag",
			Extension: ".md",
		},
		Index: IndexConfig{
			Path: ".taggen/index.db",
		},
	}
}

// Normalize 在 Validate 之前调用：去空白，扩展名缺点号就补上
func (c *Config) Normalize() {
	c.Source.Dir = strings.TrimSpace(c.Source.Dir)
	c.Output.Dir = strings.TrimSpace(c.Output.Dir)
	c.Index.Path = strings.TrimSpace(c.Index.Path)
	c.Source.Extension = normalizeExt(c.Source.Extension)
	c.Output.Extension = normalizeExt(c.Output.Extension)
}

func normalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

func (c Config) Validate() error {
	var ve domainerr.ValidationError

	if strings.TrimSpace(c.Source.Dir) == "" {
		ve.Add("source.dir", "must not be empty")
	}
	if ext := strings.TrimSpace(c.Source.Extension); ext == "" {
		ve.Add("source.extension", "must not be empty")
	} else if !strings.HasPrefix(ext, ".") {
		ve.Add("source.extension", "must start with '.'")
	} else if ext == "." {
		ve.Add("source.extension", "must name an extension after '.'")
	}

	if strings.TrimSpace(c.Output.Dir) == "" {
		ve.Add("output.dir", "must not be empty")
	}
	if ext := strings.TrimSpace(c.Output.Extension); ext == "" {
		ve.Add("output.extension", "must not be empty")
	} else if !strings.HasPrefix(ext, ".") {
		ve.Add("output.extension", "must start with '.'")
	} else if ext == "." {
		ve.Add("output.extension", "must name an extension after '.'")
	}

	if strings.TrimSpace(c.Index.Path) == "" {
		ve.Add("index.path", "must not be empty")
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	// 直接 Unmarshal 到 cfg 上：文件中写到的字段覆盖默认值，其他字段保留 Default
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func LoadOrDefault(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// 文件不存在：整套默认值直接可用
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
