package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"id"`       // uuid
	Username  string    `bson:"username" json:"username"` // unique
	Password  string    `bson:"password" json:"-"`        // argon2id salt$hash
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
