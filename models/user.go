package models

// User is a registered account. The password hash never leaves the server;
// it is excluded from JSON and additionally stripped by the response DTOs.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"unique;not null" json:"username"`
	Email          string `gorm:"unique" json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	HashedPassword string `gorm:"not null" json:"-"`
	Role           Role   `gorm:"not null;default:user" json:"role"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
	PhoneNumber    string `json:"phone_number"`
}

func (User) TableName() string {
	return "users"
}
