package model

import "time"

// Record 聊天流水，只追加。
type Record struct {
	ID         int64     `json:"id"`
	Channel    string    `json:"channel"`
	SenderID   int64     `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
