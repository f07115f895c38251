// Package entity defines the domain entities for the survey feature.
package entity

import "time"

// Answers is one user's complete set of responses to the fixed
// four-question survey, plus the date the survey refers to.
type Answers struct {
	Date      string `gorm:"size:64;not null" json:"date"`
	Question1 string `gorm:"not null" json:"question1"`
	Question2 string `gorm:"not null" json:"question2"`
	Question3 string `gorm:"not null" json:"question3"`
	Question4 string `gorm:"not null" json:"question4"`
}

// Submission is one user's recorded survey response. The unique index on
// UserID is the one-submission-per-user invariant: the database rejects a
// second insert for the same user, which keeps the check-and-write atomic
// under concurrent requests. Records are immutable once stored.
type Submission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Answers   Answers   `gorm:"embedded" json:"answers"`
	CreatedAt time.Time `json:"createdAt"`
}
