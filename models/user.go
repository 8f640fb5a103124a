package models

import "time"

// User represents an account and everything it owns
type User struct {
	ID           string    `gorm:"primaryKey;size:32" bson:"_id" json:"_id"`
	FName        string    `gorm:"not null;size:100" bson:"fname" json:"fname"`
	LName        string    `gorm:"not null;size:100" bson:"lname" json:"lname"`
	Email        string    `gorm:"uniqueIndex;not null;size:254" bson:"email" json:"email"`
	PasswordHash string    `gorm:"not null" bson:"password" json:"-"`
	Details      Details   `gorm:"embedded;embeddedPrefix:details_" bson:"details" json:"details"`
	Colleges     []College `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" bson:"colleges" json:"colleges"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NewUser builds a user with empty details and no colleges.
func NewUser(fname, lname, email, passwordHash string) (*User, error) {
	id, err := NewID()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:           id,
		FName:        fname,
		LName:        lname,
		Email:        email,
		PasswordHash: passwordHash,
		Colleges:     []College{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// DisplayName is the name carried in the session.
func (u *User) DisplayName() string {
	return u.FName
}
