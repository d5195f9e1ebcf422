package models

// User is a site owner account. Only the bcrypt hash of the password is stored.
type User struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}
