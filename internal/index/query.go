package index

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"

	bolt "go.etcd.io/bbolt"

	"taggen/internal/domain/content"
)

var ErrNotFound = errors.New("not found")

// GetTag 按标签原文查（trim 之外不做任何归一化，大小写敏感）
func (s *Store) GetTag(label string) (content.Tag, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return content.Tag{}, ErrNotFound
	}
	var tg content.Tag
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bTags)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(label))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &tg)
	})
	return tg, err
}

// ListTags 返回全部标签记录，Count 多的在前，相同按 Label 升序
func (s *Store) ListTags() ([]content.Tag, error) {
	var out []content.Tag
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bTags)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var tg content.Tag
			if err := json.Unmarshal(v, &tg); err != nil {
				return err
			}
			out = append(out, tg)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Label < out[j].Label
		}
		return out[i].Count > out[j].Count
	})
	return out, nil
}

// Outputs 返回上一轮记录的产物清单：生成的文件名 -> 标签原文
func (s *Store) Outputs() (map[string]string, error) {
	out := make(map[string]string)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bOutputs)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			out[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
