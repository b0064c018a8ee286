package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account that owns workouts.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON

	// Img is either an external image URL or the S3 object key of an
	// uploaded profile picture.
	Img       string    `bson:"img,omitempty" json:"img,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasUploadedImg reports whether Img points to an object in our bucket
// rather than an external URL.
func (u *User) HasUploadedImg() bool {
	return u.Img != "" && !isExternalURL(u.Img)
}

func isExternalURL(s string) bool {
	return len(s) > 8 && (s[:7] == "http://" || s[:8] == "https://")
}
