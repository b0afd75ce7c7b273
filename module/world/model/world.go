package model

// 静态游戏数据，由运营后台维护，这里只读。

type Location struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MinLevel    int    `json:"min_level"`
}

type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	ReqLevel int    `json:"req_level"`
	Price    int64  `json:"price"`
}

type Quest struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ReqLevel    int    `json:"req_level"`
	RewardExp   int64  `json:"reward_exp"`
	RewardGold  int64  `json:"reward_gold"`
}
