package models

type Hackathon struct {
	ID          uint64  `gorm:"primarykey" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Result      string  `gorm:"type:varchar(128);not null" json:"result"`
	Date        string  `gorm:"type:varchar(64);not null" json:"date"`
	Description string  `gorm:"type:text;not null" json:"description"`
	ProjectName *string `gorm:"type:varchar(255)" json:"projectName"`
}
