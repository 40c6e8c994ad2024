package index

import (
	"encoding/json"
	"strings"

	bolt "go.etcd.io/bbolt"

	"taggen/internal/domain/content"
)

// Rebuild 全量重建：两个 bucket 先删后建，标签记录和产物清单在同一个事务里落盘
func (s *Store) Rebuild(tags []content.Tag, outputs map[string]string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		_ = tx.DeleteBucket(bTags)
		_ = tx.DeleteBucket(bOutputs)

		tagsB, _ := tx.CreateBucket(bTags)
		outB, _ := tx.CreateBucket(bOutputs)

		for _, tg := range tags {
			if strings.TrimSpace(tg.Label) == "" {
				continue
			}
			rec, err := json.Marshal(tg)
			if err != nil {
				return err
			}
			if err := tagsB.Put([]byte(tg.Label), rec); err != nil {
				return err
			}
		}

		for filename, label := range outputs {
			if err := outB.Put([]byte(filename), []byte(label)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Drop 把两个 bucket 都清掉，db 文件本身留着
func (s *Store) Drop() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		_ = tx.DeleteBucket(bTags)
		_ = tx.DeleteBucket(bOutputs)
		return nil
	})
}
