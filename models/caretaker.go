package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Caretaker holds the structure for the caretaker collection in mongo
type Caretaker struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	Role         string             `bson:"role"`
}

// EmailField is the caretaker uniqueness key
const EmailField = "email"
