package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gloomhold/internal/adapter/repo/gorm/model"
	"gloomhold/internal/app/ports"
	"gloomhold/internal/domain/loot"

	"gorm.io/gorm"
)

type CharacterRepo struct {
	db *gorm.DB
}

func NewCharacterRepo(db *gorm.DB) CharacterRepo {
	return CharacterRepo{db: db}
}

func (r CharacterRepo) GetByID(ctx context.Context, characterID string) (ports.CharacterRecord, error) {
	row := model.Character{}
	err := r.db.WithContext(ctx).
		Where(&model.Character{CharacterID: characterID}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CharacterRecord{}, ports.ErrNotFound
		}
		return ports.CharacterRecord{}, err
	}

	var equipment []loot.Item
	if len(row.Equipment) > 0 {
		_ = json.Unmarshal(row.Equipment, &equipment)
	}
	return ports.CharacterRecord{
		CharacterID: row.CharacterID,
		PlayerID:    row.PlayerID,
		Name:        row.Name,
		Level:       int(row.Level),
		XP:          int(row.XP),
		MaxHP:       int(row.MaxHP),
		Attack:      int(row.Attack),
		Defense:     int(row.Defense),
		Speed:       int(row.Speed),
		MagicFind:   row.MagicFind,
		Equipment:   equipment,
	}, nil
}
