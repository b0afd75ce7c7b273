package service

import (
	"context"

	"DreamMMO/logger"
	usermodel "DreamMMO/module/user/model"
	"DreamMMO/tools/errs"
	jwtlib "DreamMMO/tools/security"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type Service struct {
	pool *pgxpool.Pool
	jwt  jwtlib.Options
}

func New(pool *pgxpool.Pool, jwt jwtlib.Options) *Service {
	return &Service{pool: pool, jwt: jwt}
}

// Register 创建账号并直接签发令牌。登录名或邮箱占用返回 ErrLoginTaken。
func (s *Service) Register(ctx context.Context, in usermodel.RegisterReq) (userID int64, token string, err error) {
	var existing int64
	err = s.pool.QueryRow(ctx,
		"SELECT id FROM users WHERE login=$1 OR email=$2", in.Login, in.Email,
	).Scan(&existing)
	if err == nil {
		return 0, "", errs.ErrLoginTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, "", errors.Wrap(err, "check existing user")
	}

	hash, err := jwtlib.HashPassword(in.Password)
	if err != nil {
		return 0, "", errors.Wrap(err, "hash password")
	}

	err = s.pool.QueryRow(ctx,
		"INSERT INTO users (login, email, password_hash) VALUES ($1, $2, $3) RETURNING id",
		in.Login, in.Email, hash,
	).Scan(&userID)
	if err != nil {
		return 0, "", errors.Wrap(err, "insert user")
	}

	token, _, err = jwtlib.Generate(s.jwt, userID)
	if err != nil {
		return 0, "", errors.Wrap(err, "sign token")
	}
	return userID, token, nil
}

// Login 校验口令并签发令牌，同时刷新 last_login。
func (s *Service) Login(ctx context.Context, in usermodel.LoginReq) (userID int64, token string, err error) {
	var hash string
	err = s.pool.QueryRow(ctx,
		"SELECT id, password_hash FROM users WHERE login=$1", in.Login,
	).Scan(&userID, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, "", errs.ErrBadCredentials
	}
	if err != nil {
		return 0, "", errors.Wrap(err, "query user")
	}
	if !jwtlib.VerifyPassword(in.Password, hash) {
		return 0, "", errs.ErrBadCredentials
	}

	if _, err := s.pool.Exec(ctx, "UPDATE users SET last_login=NOW() WHERE id=$1", userID); err != nil {
		// 非致命：登录照常放行
		logger.Errorf("[user] update last_login uid=%d err=%v", userID, err)
	}

	token, _, err = jwtlib.Generate(s.jwt, userID)
	if err != nil {
		return 0, "", errors.Wrap(err, "sign token")
	}
	return userID, token, nil
}
