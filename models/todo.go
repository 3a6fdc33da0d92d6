package models

// Todo is a single task owned by exactly one user.
type Todo struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Completed   bool   `gorm:"default:false" json:"completed"`
	OwnerID     uint   `gorm:"index;not null" json:"owner_id"`
}

func (Todo) TableName() string {
	return "todos"
}
