package service

import (
	"context"

	charmodel "DreamMMO/module/character/model"
	"DreamMMO/tools/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// 新角色出生点
const startLocationID = 1

const characterColumns = `id, user_id, name, race, class, level, exp, hp, mp, gold, location_id, created_at`

type Service struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

// Create 建角。名字全服唯一，重名返回 ErrCharacterNameTaken。
func (s *Service) Create(ctx context.Context, userID int64, in charmodel.CreateCharacterReq) (int64, error) {
	if in.Race == "" {
		in.Race = "human"
	}
	if in.Class == "" {
		in.Class = "warrior"
	}

	var existing int64
	err := s.pool.QueryRow(ctx, "SELECT id FROM characters WHERE name=$1", in.Name).Scan(&existing)
	if err == nil {
		return 0, errs.ErrCharacterNameTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, errors.Wrap(err, "check character name")
	}

	var charID int64
	err = s.pool.QueryRow(ctx,
		`INSERT INTO characters (user_id, name, race, class, location_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		userID, in.Name, in.Race, in.Class, startLocationID,
	).Scan(&charID)
	if err != nil {
		return 0, errors.Wrap(err, "insert character")
	}
	return charID, nil
}

// FirstByUser 取用户的第一个角色（按 id 升序）。没有则 ErrCharacterMissing。
func (s *Service) FirstByUser(ctx context.Context, userID int64) (*charmodel.Character, error) {
	var ch charmodel.Character
	err := s.pool.QueryRow(ctx,
		"SELECT "+characterColumns+" FROM characters WHERE user_id=$1 ORDER BY id LIMIT 1",
		userID,
	).Scan(
		&ch.ID, &ch.UserID, &ch.Name, &ch.Race, &ch.Class,
		&ch.Level, &ch.Exp, &ch.HP, &ch.MP, &ch.Gold,
		&ch.LocationID, &ch.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.ErrCharacterMissing
	}
	if err != nil {
		return nil, errors.Wrap(err, "query character")
	}
	return &ch, nil
}
