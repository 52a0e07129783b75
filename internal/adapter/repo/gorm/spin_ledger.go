package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"rentspin/internal/adapter/repo/gorm/model"
	"rentspin/internal/app/ports"
	"rentspin/internal/domain/slot"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SpinLedger struct {
	db *gorm.DB
}

func NewSpinLedger(db *gorm.DB) SpinLedger {
	return SpinLedger{db: db}
}

// Record inserts rec once; a second record for the same spin is ErrConflict.
func (l SpinLedger) Record(ctx context.Context, rec ports.SpinRecord) error {
	consumed := rec.Consumed
	if consumed == nil {
		consumed = []slot.Consumption{}
	}
	consumedJSON, err := json.Marshal(consumed)
	if err != nil {
		return fmt.Errorf("encode consumed: %w", err)
	}
	gridJSON, err := json.Marshal(rec.Grid)
	if err != nil {
		return fmt.Errorf("encode grid: %w", err)
	}
	m := model.SpinRecord{
		GameID:         rec.GameID,
		SpinSeq:        rec.SpinSeq,
		Payout:         int32(rec.Payout),
		Coins:          int32(rec.Coins),
		Rent:           int32(rec.Rent),
		SpinsUntilRent: int32(rec.SpinsUntilRent),
		Consumed:       consumedJSON,
		Grid:           gridJSON,
		RecordedAt:     rec.RecordedAt,
	}
	res := conn(ctx, l.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "game_id"}, {Name: "spin_seq"}}, DoNothing: true}).
		Create(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

// ListByGameID returns the newest spins first.
func (l SpinLedger) ListByGameID(ctx context.Context, gameID string, limit int) ([]ports.SpinRecord, error) {
	rows := []model.SpinRecord{}
	query := conn(ctx, l.db).
		Where(&model.SpinRecord{GameID: gameID}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "spin_seq"}, Desc: true})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.SpinRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := decodeSpin(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeSpin(m model.SpinRecord) (ports.SpinRecord, error) {
	var consumed []slot.Consumption
	var grid slot.Grid
	if err := json.Unmarshal(m.Consumed, &consumed); err != nil {
		return ports.SpinRecord{}, fmt.Errorf("decode consumed of spin %s/%d: %w", m.GameID, m.SpinSeq, err)
	}
	if err := json.Unmarshal(m.Grid, &grid); err != nil {
		return ports.SpinRecord{}, fmt.Errorf("decode grid of spin %s/%d: %w", m.GameID, m.SpinSeq, err)
	}
	return ports.SpinRecord{
		GameID:         m.GameID,
		SpinSeq:        m.SpinSeq,
		Payout:         int(m.Payout),
		Coins:          int(m.Coins),
		Rent:           int(m.Rent),
		SpinsUntilRent: int(m.SpinsUntilRent),
		Consumed:       consumed,
		Grid:           grid,
		RecordedAt:     m.RecordedAt,
	}, nil
}
