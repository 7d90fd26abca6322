package model

type TaskStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	Overdue        int `json:"overdue"`
	Today          int `json:"today"`
	CompletedToday int `json:"completedToday"`
	CompletionRate int `json:"completionRate"`
}

type ProjectProgress struct {
	ProjectID      int64  `json:"projectId"`
	Name           string `json:"name"`
	Color          string `json:"color"`
	Total          int    `json:"total"`
	Completed      int    `json:"completed"`
	CompletionRate int    `json:"completionRate"`
}
