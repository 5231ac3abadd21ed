package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gloomhold/internal/adapter/repo/gorm/model"
	"gloomhold/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RunArchiveRepo struct {
	db *gorm.DB
}

func NewRunArchiveRepo(db *gorm.DB) RunArchiveRepo {
	return RunArchiveRepo{db: db}
}

func (r RunArchiveRepo) SaveStart(ctx context.Context, record ports.RunRecord) error {
	row := runRow(record)
	err := r.db.WithContext(ctx).Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ports.ErrConflict
	}
	return err
}

func (r RunArchiveRepo) SaveOutcome(ctx context.Context, record ports.RunRecord, events []ports.RunEvent) error {
	rows := make([]model.RunEvent, 0, len(events))
	for _, e := range events {
		b, _ := json.Marshal(e.Payload)
		rows = append(rows, model.RunEvent{
			RunID:      e.RunID,
			Seq:        int32(e.Seq),
			Type:       e.Type,
			Payload:    b,
			OccurredAt: e.OccurredAt,
		})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := runRow(record)
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "run_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "depth_reached", "gold", "xp", "ended_at",
			}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		// Redelivery after a partial failure must not duplicate the trail.
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "run_id"}, {Name: "seq"}},
			DoNothing: true,
		}).Create(&rows).Error
	})
}

func (r RunArchiveRepo) ListEvents(ctx context.Context, runID string, limit int) ([]ports.RunEvent, error) {
	rows := []model.RunEvent{}
	query := r.db.WithContext(ctx).
		Where(&model.RunEvent{RunID: runID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "seq"}}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.RunEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, ports.RunEvent{
			RunID:      row.RunID,
			Seq:        int(row.Seq),
			Type:       row.Type,
			Payload:    payload,
			OccurredAt: row.OccurredAt,
		})
	}
	return out, nil
}

func runRow(record ports.RunRecord) model.DungeonRun {
	row := model.DungeonRun{
		RunID:        record.RunID,
		PlayerID:     record.PlayerID,
		CharacterID:  record.CharacterID,
		Seed:         record.Seed,
		Status:       string(record.Status),
		DepthReached: int32(record.DepthReached),
		Gold:         int64(record.Gold),
		XP:           int64(record.XP),
		StartedAt:    record.StartedAt,
	}
	if !record.EndedAt.IsZero() {
		ended := record.EndedAt
		row.EndedAt = &ended
	}
	return row
}
