package model

type AssessmentQuestion struct {
	ID            uint     `gorm:"primarykey" json:"id"`
	AssessmentID  string   `gorm:"type:varchar(36);not null;index" json:"assessment_id"`
	Position      int      `gorm:"not null" json:"position"`
	Question      string   `gorm:"type:text;not null" json:"question"`
	Options       []string `gorm:"serializer:json;type:text;not null" json:"options"`
	CorrectAnswer string   `gorm:"type:text;not null" json:"correct_answer"`
	Answer        *string  `gorm:"type:text" json:"answer,omitempty"`
}
