package service

import (
	"context"

	worldmodel "DreamMMO/module/world/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type Service struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

func (s *Service) Locations(ctx context.Context) ([]worldmodel.Location, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, name, description, min_level FROM locations ORDER BY id")
	if err != nil {
		return nil, errors.Wrap(err, "query locations")
	}
	defer rows.Close()

	out := make([]worldmodel.Location, 0, 16)
	for rows.Next() {
		var l worldmodel.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.MinLevel); err != nil {
			return nil, errors.Wrap(err, "scan location")
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Service) Items(ctx context.Context) ([]worldmodel.Item, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, name, type, req_level, price FROM items ORDER BY type, req_level")
	if err != nil {
		return nil, errors.Wrap(err, "query items")
	}
	defer rows.Close()

	out := make([]worldmodel.Item, 0, 64)
	for rows.Next() {
		var it worldmodel.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Type, &it.ReqLevel, &it.Price); err != nil {
			return nil, errors.Wrap(err, "scan item")
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (s *Service) Quests(ctx context.Context) ([]worldmodel.Quest, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, title, description, req_level, reward_exp, reward_gold FROM quests ORDER BY req_level")
	if err != nil {
		return nil, errors.Wrap(err, "query quests")
	}
	defer rows.Close()

	out := make([]worldmodel.Quest, 0, 32)
	for rows.Next() {
		var q worldmodel.Quest
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.ReqLevel, &q.RewardExp, &q.RewardGold); err != nil {
			return nil, errors.Wrap(err, "scan quest")
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
