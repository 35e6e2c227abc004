package model

import (
	"time"

	"gorm.io/datatypes"
)

// MarketSnapshot 行情快照（同步自 Polymarket Gamma 的事件，仅存行情，不存分析结果）
type MarketSnapshot struct {
	ID              uint64         `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	SnapshotUUID    string         `gorm:"column:snapshot_uuid;type:varchar(64);uniqueIndex;not null;comment:全局唯一ID"`
	Platform        string         `gorm:"column:platform;type:varchar(32);not null;uniqueIndex:uk_platform_event;comment:来源平台"`
	PlatformEventID string         `gorm:"column:platform_event_id;type:varchar(64);not null;uniqueIndex:uk_platform_event;comment:平台原生ID"`
	Slug            string         `gorm:"column:slug;type:varchar(256);comment:事件slug"`
	Title           string         `gorm:"column:title;type:varchar(512);not null;comment:事件标题"`
	EndDate         string         `gorm:"column:end_date;type:varchar(64);comment:结束日期（原文）"`
	MarketCount     int            `gorm:"column:market_count;type:int;default:0;comment:市场数量"`
	Closed          bool           `gorm:"column:closed;type:boolean;default:false;comment:是否已关闭"`
	Payload         datatypes.JSON `gorm:"column:payload;type:jsonb;not null;comment:归一化后的事件"`
	SyncedAt        time.Time      `gorm:"column:synced_at;type:timestamp;not null;comment:同步时间"`
	CreatedAt       time.Time      `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间"`
}

func (MarketSnapshot) TableName() string { return "market_snapshots" }

// PlatformPolymarket 快照来源平台名
const PlatformPolymarket = "polymarket"
