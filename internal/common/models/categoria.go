package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categoria is referenced by Producto, never embedded elsewhere. Nombre is
// stored lowercase and trimmed.
type Categoria struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nombre      string             `json:"nombre" bson:"nombre"`
	Descripcion string             `json:"descripcion" bson:"descripcion"`
}
