package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Producto is an inventory item. The document in the "productos" collection
// is the source of truth; copies of it are embedded inside Lugar documents
// (and transitively inside GrupoFamiliar) and kept in sync by the producto
// service, not by the database.
type Producto struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nombre         string             `json:"nombre" bson:"nombre"`
	Descripcion    string             `json:"descripcion" bson:"descripcion"`
	Cantidad       int                `json:"cantidad" bson:"cantidad"`
	CantidadMinima int                `json:"cantidadMinima" bson:"cantidadMinima"`
	Expiracion     *time.Time         `json:"expiracion,omitempty" bson:"expiracion,omitempty"`
	Categoria      *Categoria         `json:"categoria,omitempty" bson:"categoria,omitempty"`
}
