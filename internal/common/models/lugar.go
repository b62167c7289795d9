package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lugar is a storage location inside a family group (pantry, fridge, ...).
// Productos holds embedded snapshot copies of Producto documents.
type Lugar struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nombre          string             `json:"nombre" bson:"nombre"`
	Descripcion     string             `json:"descripcion" bson:"descripcion"`
	GrupoFamiliarID string             `json:"grupoFamiliarId" bson:"grupoFamiliarId,omitempty"`
	CreadoPor       string             `json:"creadoPor" bson:"creadoPor"`
	FechaCreacion   time.Time          `json:"fechaCreacion" bson:"fechaCreacion"`
	Productos       []Producto         `json:"productos" bson:"productos"`
}
