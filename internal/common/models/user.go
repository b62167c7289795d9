package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account that can sign in and belong to at most one GrupoFamiliar.
type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
	Roles    []string           `json:"roles" bson:"roles"`
}
