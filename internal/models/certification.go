package models

type Certification struct {
	ID            uint64  `gorm:"primarykey" json:"id"`
	Title         string  `gorm:"type:varchar(255);not null" json:"title"`
	Issuer        string  `gorm:"type:varchar(255);not null" json:"issuer"`
	IssueDate     string  `gorm:"type:varchar(64);not null" json:"issueDate"`
	CredentialURL *string `gorm:"type:varchar(512)" json:"credentialUrl"`
	IconRef       *string `gorm:"type:varchar(128)" json:"iconRef"`
}
