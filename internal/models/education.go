package models

type Education struct {
	ID          uint64  `gorm:"primarykey" json:"id"`
	Degree      string  `gorm:"type:varchar(255);not null" json:"degree"`
	Institution string  `gorm:"type:varchar(255);not null" json:"institution"`
	Period      string  `gorm:"type:varchar(128);not null" json:"period"`
	GPA         *string `gorm:"type:varchar(32)" json:"gpa"`
	Description *string `gorm:"type:text" json:"description"`
}
