package model

import "time"

// Character 角色快照。JSON 形状即对外（welcome 等）下发的形状。
type Character struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	Race       string    `json:"race"`
	Class      string    `json:"class"`
	Level      int       `json:"level"`
	Exp        int64     `json:"exp"`
	HP         int       `json:"hp"`
	MP         int       `json:"mp"`
	Gold       int64     `json:"gold"`
	LocationID int64     `json:"location_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateCharacterReq 建角入参
type CreateCharacterReq struct {
	Name  string `json:"name" binding:"required"`
	Race  string `json:"race"`
	Class string `json:"char_class"`
}
