// Package audit persists the operations log: every turn, tool execution,
// approval, and remediation gets one record. The dashboard command reads the
// same store back.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

const (
	KindTurn          = "turn"
	KindToolExecution = "tool_execution"
	KindApproval      = "approval"
	KindRemediation   = "remediation"
)

type Record struct {
	bun.BaseModel `bun:"table:operations_log,alias:ol"`

	ID        string    `bun:"id,pk"`
	Time      time.Time `bun:"time,notnull"`
	SessionID string    `bun:"session_id"`
	Kind      string    `bun:"kind,notnull"`
	Tool      string    `bun:"tool"`
	Target    string    `bun:"target"`
	Detail    string    `bun:"detail"`
}

// Recorder is the write-side contract the agent depends on. NopRecorder
// satisfies it when auditing is disabled.
type Recorder interface {
	Record(ctx context.Context, rec Record) error
}

type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Record) error { return nil }

type Config struct {
	Path string `envconfig:"PATH" split_words:"true" default:"aura_operations.db"`
}

// Store is a bun-backed sqlite operations log.
type Store struct {
	db *bun.DB
}

func Open(ctx context.Context, path string) (*Store, error) {
	dsn := strings.TrimSpace(path)
	if dsn == "" {
		dsn = "aura_operations.db"
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if _, err := db.NewCreateTable().Model((*Record)(nil)).IfNotExists().Exec(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create operations_log table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Record(ctx context.Context, rec Record) error {
	if strings.TrimSpace(rec.ID) == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Time.IsZero() {
		rec.Time = time.Now().UTC()
	} else {
		rec.Time = rec.Time.UTC()
	}
	if strings.TrimSpace(rec.Kind) == "" {
		return fmt.Errorf("audit record kind is required")
	}

	if _, err := s.db.NewInsert().Model(&rec).Exec(ctx); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

// Recent returns the newest records, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []Record
	if err := s.db.NewSelect().Model(&recs).Order("time DESC").Limit(limit).Scan(ctx); err != nil {
		return nil, fmt.Errorf("select audit records: %w", err)
	}
	return recs, nil
}
