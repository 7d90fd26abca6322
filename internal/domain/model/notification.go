package model

import "time"

type OverdueDigestItem struct {
	ID       int64      `json:"id"`
	Title    string     `json:"title"`
	Priority string     `json:"priority"`
	Deadline *time.Time `json:"deadline"`
	Relative string     `json:"relative"`
}

type OverdueDigest struct {
	GeneratedAt time.Time           `json:"generatedAt"`
	Count       int                 `json:"count"`
	Tasks       []OverdueDigestItem `json:"tasks"`
}
