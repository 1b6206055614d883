package model

import "time"

type User struct {
	ID        string    `bson:"_id" json:"id"`
	Username  string    `bson:"username" json:"username"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"` // argon2id digest, never serialized
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
