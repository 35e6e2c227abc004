package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"MarketLens/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 列表默认条数与上限
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// ErrSnapshotNotFound 快照不存在
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository 行情快照仓储
type SnapshotRepository interface {
	// SaveSnapshots 按 (platform, platform_event_id) 幂等写入，返回实际写入条数
	SaveSnapshots(ctx context.Context, platform string, events []model.EventRecord) (int, error)
	ListSnapshots(ctx context.Context, limit int) ([]model.EventRecord, error)
	GetSnapshot(ctx context.Context, platform, platformEventID string) (*model.EventRecord, error)
}

type snapshotRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db, now: time.Now}
}

func (r *snapshotRepository) SaveSnapshots(ctx context.Context, platform string, events []model.EventRecord) (int, error) {
	syncedAt := r.now().UTC()
	rows := make([]*model.MarketSnapshot, 0, len(events))
	seen := make(map[string]int, len(events))
	for i := range events {
		ev := events[i]
		// 无平台ID的事件无法去重，跳过
		if ev.ID == "" {
			continue
		}
		payload, err := json.Marshal(ev)
		if err != nil {
			return 0, fmt.Errorf("序列化快照失败: %w, event_id: %s", err, ev.ID)
		}
		row := &model.MarketSnapshot{
			SnapshotUUID:    uuid.NewString(),
			Platform:        platform,
			PlatformEventID: ev.ID,
			Slug:            ev.Slug,
			Title:           ev.Title,
			EndDate:         ev.EndDate,
			MarketCount:     len(ev.Markets),
			Closed:          ev.Closed,
			Payload:         datatypes.JSON(payload),
			SyncedAt:        syncedAt,
		}
		// 同批重复ID保留最后一条，避免 ON CONFLICT 同一行更新两次
		if idx, ok := seen[ev.ID]; ok {
			rows[idx] = row
			continue
		}
		seen[ev.ID] = len(rows)
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "platform"}, {Name: "platform_event_id"}},
			// snapshot_uuid 首次写入后保持不变
			DoUpdates: clause.AssignmentColumns([]string{"slug", "title", "end_date", "market_count", "closed", "payload", "synced_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		return 0, fmt.Errorf("保存快照失败: %w", err)
	}
	return len(rows), nil
}

func (r *snapshotRepository) ListSnapshots(ctx context.Context, limit int) ([]model.EventRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	var rows []*model.MarketSnapshot
	if err := r.db.WithContext(ctx).
		Order("synced_at DESC").Order("id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("查询快照失败: %w", err)
	}

	events := make([]model.EventRecord, 0, len(rows))
	for _, row := range rows {
		ev, err := decodePayload(row)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func (r *snapshotRepository) GetSnapshot(ctx context.Context, platform, platformEventID string) (*model.EventRecord, error) {
	var row model.MarketSnapshot
	err := r.db.WithContext(ctx).
		Where("platform = ? AND platform_event_id = ?", platform, platformEventID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s/%s", ErrSnapshotNotFound, platform, platformEventID)
	}
	if err != nil {
		return nil, fmt.Errorf("查询快照失败: %w", err)
	}
	ev, err := decodePayload(&row)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func decodePayload(row *model.MarketSnapshot) (model.EventRecord, error) {
	var ev model.EventRecord
	if err := json.Unmarshal(row.Payload, &ev); err != nil {
		return ev, fmt.Errorf("解析快照失败: %w, snapshot_uuid: %s", err, row.SnapshotUUID)
	}
	return ev, nil
}
