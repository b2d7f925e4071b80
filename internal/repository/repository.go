package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/carehome-dev/care-journal/backend/internal/config"
)

// 每个集合作为一个完整的 JSON blob 持久化，键名沿用前端时代的
// local storage 键，方便旧数据迁移。
const (
	KeyUsers      = "carejournal_users_v2"
	KeyShifts     = "carejournal_shifts_v2"
	KeyMessages   = "carejournal_messages_v2"
	KeyJournal    = "carejournal_journal_v2"
	KeyCategories = "carejournal_categories_v2"
	KeySchedule   = "carejournal_schedule_v2"
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

// EnsureSchema 创建集合表。存储模型只有这一张 key-value 表，
// 不需要独立的迁移工具。
func (r *Repository) EnsureSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS collections (
			key TEXT PRIMARY KEY,
			blob JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query); err != nil {
		return err
	}

	return nil
}

// getCollection 读取整个集合。返回值表示集合是否存在；
// blob 损坏按照不存在处理并记录日志，调用方会退回默认值。
func (r *Repository) getCollection(key string, dst any) (bool, error) {
	query := `
		SELECT blob FROM collections WHERE key = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var blob []byte
	if err := r.dbpool.QueryRowContext(ctx, query, key).Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(blob, dst); err != nil {
		slog.Warn("集合数据损坏，退回默认值", "key", key, "error", err)
		return false, nil
	}

	return true, nil
}

// saveCollection 序列化并覆盖整个集合。没有增量写入格式。
func (r *Repository) saveCollection(key string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO collections (key, blob, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET blob = EXCLUDED.blob, updated_at = NOW()
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, key, blob); err != nil {
		return err
	}

	return nil
}
