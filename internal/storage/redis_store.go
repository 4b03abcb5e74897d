package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"newsletter-studio/internal/model"
)

// BackupTTL is the staleness cutoff: a backup older than this expires and a
// load behaves as if none exists.
const BackupTTL = 24 * time.Hour

const backupKey = "newsletter:backup"

// Backup is the single stored snapshot with its save timestamp.
type Backup struct {
	SavedAt time.Time         `json:"saved_at"`
	Data    *model.Newsletter `json:"data"`
}

// BackupStore keeps one timestamped newsletter snapshot in Redis. Saving
// overwrites the previous slot.
type BackupStore struct {
	rdb *redis.Client
}

func NewBackupStore(rdb *redis.Client) *BackupStore {
	return &BackupStore{rdb: rdb}
}

// Save stores a snapshot of the document, replacing any previous backup and
// resetting the TTL.
func (s *BackupStore) Save(ctx context.Context, n *model.Newsletter) error {
	b, err := json.Marshal(Backup{SavedAt: time.Now().UTC(), Data: n})
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, backupKey, b, BackupTTL).Err()
}

// Load returns the current backup, or (nil, nil) when no unexpired backup
// exists.
func (s *BackupStore) Load(ctx context.Context) (*Backup, error) {
	b, err := s.rdb.Get(ctx, backupKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var backup Backup
	if err := json.Unmarshal(b, &backup); err != nil {
		return nil, err
	}
	return &backup, nil
}

// Clear removes the backup slot.
func (s *BackupStore) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, backupKey).Err()
}
