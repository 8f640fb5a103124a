package models

import "time"

// College is a target school owned by a single user
type College struct {
	ID                string         `gorm:"primaryKey;size:32" bson:"_id" json:"_id"`
	UserID            string         `gorm:"not null;index;size:32" bson:"-" json:"-"`
	Position          int            `gorm:"not null;default:0" bson:"-" json:"-"`
	CollegeName       string         `gorm:"not null;size:200" bson:"collegeName" json:"collegeName"`
	ApplicationStatus map[string]any `gorm:"serializer:json;type:text" bson:"application_status" json:"application_status"`
	Questions         []Question     `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" bson:"questions" json:"questions"`
	CreatedAt         time.Time      `bson:"createdAt" json:"-"`
}

// Question is an essay prompt and the user's draft answer
type Question struct {
	ID        string    `gorm:"primaryKey;size:32" bson:"_id" json:"_id"`
	CollegeID string    `gorm:"not null;index;size:32" bson:"-" json:"-"`
	Position  int       `gorm:"not null;default:0" bson:"-" json:"-"`
	Question  string    `gorm:"not null;size:2000" bson:"question" json:"question"`
	Answer    string    `gorm:"type:text" bson:"answer" json:"answer"`
	CreatedAt time.Time `bson:"createdAt" json:"-"`
}

func NewCollege(name string) (College, error) {
	id, err := NewID()
	if err != nil {
		return College{}, err
	}
	return College{
		ID:                id,
		CollegeName:       name,
		ApplicationStatus: map[string]any{},
		Questions:         []Question{},
		CreatedAt:         time.Now().UTC(),
	}, nil
}

func NewQuestion(text string) (Question, error) {
	id, err := NewID()
	if err != nil {
		return Question{}, err
	}
	return Question{
		ID:        id,
		Question:  text,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// FindQuestionsByText returns the ids of every question whose text matches exactly.
func (c *College) FindQuestionsByText(text string) []string {
	var ids []string
	for _, q := range c.Questions {
		if q.Question == text {
			ids = append(ids, q.ID)
		}
	}
	return ids
}
