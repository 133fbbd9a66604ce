package kv

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Soloken19/shapewear-dev/pkg/db"
)

// CartBlob is the row shape backing the sql store. The schema is
// managed by the goose migrations under pkg/migrate/migrations; the
// model exists for queries and for dev automigration.
type CartBlob struct {
	Key       string `gorm:"primaryKey;column:key"`
	Payload   []byte `gorm:"column:payload"`
	UpdatedAt time.Time
}

// TableName pins the table created by the migrations.
func (CartBlob) TableName() string { return "cart_states" }

// SQL is a Store persisted through the shared GORM client.
type SQL struct {
	client *db.Client
}

// NewSQL wraps the database client as a key-value store.
func NewSQL(client *db.Client) (*SQL, error) {
	if client == nil {
		return nil, errors.New("db client is required")
	}
	return &SQL{client: client}, nil
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row CartBlob
	err := s.client.DB().WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Payload, true, nil
}

func (s *SQL) Set(ctx context.Context, key string, payload []byte) error {
	row := CartBlob{Key: key, Payload: payload, UpdatedAt: time.Now().UTC()}
	return s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
}

func (s *SQL) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *SQL) Close() error {
	return s.client.Close()
}
