package models

type Experience struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Company     string `gorm:"type:varchar(255);not null" json:"company"`
	Period      string `gorm:"type:varchar(128);not null" json:"period"`
	Description string `gorm:"type:text;not null" json:"description"`
	IsCurrent   bool   `gorm:"not null;default:false" json:"isCurrent"`
	// "order" is reserved in SQL, hence the column name.
	Order int `gorm:"column:display_order;not null;default:0" json:"order"`
}
