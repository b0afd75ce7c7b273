package service

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	charmodel "DreamMMO/module/character/model"
	"DreamMMO/tools/errs"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func testUser(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()
	var uid int64
	login := fmt.Sprintf("chartest_%d", time.Now().UnixNano())
	err := pool.QueryRow(context.Background(),
		"INSERT INTO users (login, email, password_hash) VALUES ($1, $2, 'x') RETURNING id",
		login, login+"@example.com",
	).Scan(&uid)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return uid
}

func TestCreateAndFirstByUser(t *testing.T) {
	pool := testPool(t)
	svc := New(pool)
	ctx := context.Background()
	uid := testUser(t, pool)

	// 没有角色
	if _, err := svc.FirstByUser(ctx, uid); !errors.Is(err, errs.ErrCharacterMissing) {
		t.Fatalf("err = %v, want ErrCharacterMissing", err)
	}

	name := fmt.Sprintf("Hero%d", time.Now().UnixNano())
	charID, err := svc.Create(ctx, uid, charmodel.CreateCharacterReq{Name: name})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	ch, err := svc.FirstByUser(ctx, uid)
	if err != nil {
		t.Fatalf("FirstByUser failed: %v", err)
	}
	if ch.ID != charID || ch.Name != name {
		t.Errorf("got %+v", ch)
	}
	// 缺省职业种族和出生点
	if ch.Race != "human" || ch.Class != "warrior" || ch.LocationID != 1 {
		t.Errorf("defaults wrong: %+v", ch)
	}
	if ch.Level != 1 || ch.HP != 100 || ch.MP != 50 {
		t.Errorf("base stats wrong: %+v", ch)
	}

	// 全服重名
	other := testUser(t, pool)
	if _, err := svc.Create(ctx, other, charmodel.CreateCharacterReq{Name: name}); !errors.Is(err, errs.ErrCharacterNameTaken) {
		t.Errorf("duplicate name err = %v, want ErrCharacterNameTaken", err)
	}
}
