package models

// DefaultSkillProficiency is used when a skill is created without a proficiency.
const DefaultSkillProficiency = 3

type Skill struct {
	ID          uint64  `gorm:"primarykey" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Category    string  `gorm:"type:varchar(64);not null;index" json:"category"`
	IconRef     *string `gorm:"type:varchar(128)" json:"iconRef"`
	Proficiency int     `gorm:"not null;default:3" json:"proficiency"`
}

func (s *Skill) ApplyDefaults() {
	if s.Proficiency == 0 {
		s.Proficiency = DefaultSkillProficiency
	}
}
