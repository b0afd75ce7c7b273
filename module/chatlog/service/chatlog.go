package service

import (
	"context"

	chatlogmodel "DreamMMO/module/chatlog/model"
	"DreamMMO/tools/ids"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type Service struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

// Append 落一条聊天流水。调用方决定失败是否致命。
func (s *Service) Append(ctx context.Context, rec chatlogmodel.Record) error {
	if rec.ID == 0 {
		rec.ID = ids.Generate()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO chat_logs (id, channel, sender_id, sender_name, message)
		 VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.Channel, rec.SenderID, rec.SenderName, rec.Message,
	)
	return errors.Wrap(err, "insert chat log")
}
