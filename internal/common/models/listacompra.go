package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductoLista is a shopping-list line item. Lines are keyed by product
// name, not by Producto id.
type ProductoLista struct {
	Nombre   string `json:"nombre" bson:"nombre"`
	Cantidad int    `json:"cantidad" bson:"cantidad"`
	Unidad   string `json:"unidad" bson:"unidad"`
	Comprado bool   `json:"comprado" bson:"comprado"`
}

// ListaCompra is a shopping list owned by one GrupoFamiliar. A snapshot
// copy lives inside the owning group's listasCompra array.
type ListaCompra struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nombre          string             `json:"nombre" bson:"nombre"`
	Descripcion     string             `json:"descripcion" bson:"descripcion"`
	FechaCreacion   time.Time          `json:"fechaCreacion" bson:"fechaCreacion"`
	GrupoFamiliarID string             `json:"grupoFamiliarId" bson:"grupoFamiliarId,omitempty"`
	ProductosLista  []ProductoLista    `json:"productosLista" bson:"productosLista"`
}
