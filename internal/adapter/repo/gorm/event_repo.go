package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"rentspin/internal/adapter/repo/gorm/model"
	"rentspin/internal/app/ports"
	"rentspin/internal/domain/economy"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, gameID string, events []economy.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.DomainEvent, 0, len(events))
	for _, e := range events {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", e.Type, err)
		}
		rows = append(rows, model.DomainEvent{
			GameID:     gameID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return conn(ctx, r.db).Create(&rows).Error
}

// ListByGameID returns the newest events first. Events sharing a timestamp
// keep their insertion order through the id tiebreak.
func (r EventRepo) ListByGameID(ctx context.Context, gameID string, limit int) ([]economy.DomainEvent, error) {
	rows := []model.DomainEvent{}
	query := conn(ctx, r.db).
		Where(&model.DomainEvent{GameID: gameID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "occurred_at"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]economy.DomainEvent, 0, len(rows))
	for _, row := range rows {
		e, err := decodeEvent(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func decodeEvent(row model.DomainEvent) (economy.DomainEvent, error) {
	var payload map[string]any
	if len(row.Payload) > 0 {
		if err := json.Unmarshal(row.Payload, &payload); err != nil {
			return economy.DomainEvent{}, fmt.Errorf("decode payload of event %d: %w", row.ID, err)
		}
	}
	return economy.DomainEvent{
		Type:       row.Type,
		OccurredAt: row.OccurredAt,
		Payload:    payload,
	}, nil
}
