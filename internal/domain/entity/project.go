package entity

// DefaultProjectColor is applied when a project is created without a color
const DefaultProjectColor = "#4F46E5"

type Project struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"type:varchar(255);not null"`
	Color     string `json:"color" gorm:"type:varchar(20);not null;default:'#4F46E5'"`
	TaskCount int    `json:"taskCount" gorm:"-"`
}

func (Project) TableName() string {
	return "projects"
}
