package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"outfit-picker/core/fault"
	"outfit-picker/core/rotation"

	"gorm.io/gorm"
)

// rotationRow is one persisted category entry in the outfit_rotation table.
// The worn set is stored as a JSON array to keep the schema one-row-per-
// category instead of one-row-per-outfit.
type rotationRow struct {
	Category    string    `gorm:"column:category;primaryKey;size:255"`
	Worn        string    `gorm:"column:worn;type:text"`
	TotalCount  int       `gorm:"column:total_count"`
	LastUpdated time.Time `gorm:"column:last_updated"`
}

func (rotationRow) TableName() string { return "outfit_rotation" }

// rotationMeta is the single-row table carrying format version and creation
// time for the rotation state as a whole.
type rotationMeta struct {
	ID        int       `gorm:"column:id;primaryKey"`
	Version   int       `gorm:"column:version"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (rotationMeta) TableName() string { return "outfit_rotation_meta" }

// DBStateStore persists rotation state in MySQL through gorm. Intended for
// deployments where several hosts read the same closet from object storage
// and the state must outlive any one machine.
type DBStateStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDBStateStore creates a state store backed by the given connection.
func NewDBStateStore(db *gorm.DB) *DBStateStore {
	return &DBStateStore{db: db, now: time.Now}
}

// Migrate creates the rotation tables if they do not exist.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&rotationRow{}, &rotationMeta{})
}

func (s *DBStateStore) Load(ctx context.Context) (*rotation.StateFile, error) {
	var meta rotationMeta
	err := s.db.WithContext(ctx).First(&meta, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rotation.NewStateFile(s.now()), nil
	}
	if err != nil {
		return nil, fault.Wrap(fault.KindCache, fmt.Errorf("failed to load rotation meta: %w", err))
	}

	var rows []rotationRow
	if err := s.db.WithContext(ctx).Order("category").Find(&rows).Error; err != nil {
		return nil, fault.Wrap(fault.KindCache, fmt.Errorf("failed to load rotation rows: %w", err))
	}

	state := &rotation.StateFile{
		Categories: make(map[string]rotation.CategoryState, len(rows)),
		Version:    meta.Version,
		CreatedAt:  meta.CreatedAt,
	}
	for _, row := range rows {
		var worn []string
		if err := json.Unmarshal([]byte(row.Worn), &worn); err != nil {
			// Corrupt rows propagate; see StateStore contract.
			return nil, fault.Wrap(fault.KindCache, fmt.Errorf("corrupt worn list for category %s: %w", row.Category, err))
		}
		entry := rotation.CategoryState{
			Worn:        make(map[string]struct{}, len(worn)),
			TotalCount:  row.TotalCount,
			LastUpdated: row.LastUpdated,
		}
		for _, name := range worn {
			entry.Worn[name] = struct{}{}
		}
		state.Categories[row.Category] = entry
	}
	return state, nil
}

func (s *DBStateStore) Save(ctx context.Context, state *rotation.StateFile) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Whole-value replacement, mirroring the file store.
		if err := tx.Where("1 = 1").Delete(&rotationRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear rotation rows: %w", err)
		}

		for category, entry := range state.Categories {
			worn, err := json.Marshal(entry.WornNames())
			if err != nil {
				return fmt.Errorf("failed to encode worn list for %s: %w", category, err)
			}
			row := rotationRow{
				Category:    category,
				Worn:        string(worn),
				TotalCount:  entry.TotalCount,
				LastUpdated: entry.LastUpdated,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert rotation row %s: %w", category, err)
			}
		}

		// Replace rather than upsert so the first save works too.
		if err := tx.Where("id = ?", 1).Delete(&rotationMeta{}).Error; err != nil {
			return fmt.Errorf("failed to clear rotation meta: %w", err)
		}
		meta := rotationMeta{ID: 1, Version: state.Version, CreatedAt: state.CreatedAt}
		if err := tx.Create(&meta).Error; err != nil {
			return fmt.Errorf("failed to save rotation meta: %w", err)
		}
		return nil
	})
	if err != nil {
		return fault.Wrap(fault.KindCache, err)
	}
	return nil
}
