package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types produced by the stock sweep.
const (
	TipoCantidadBaja      = "CANTIDAD_BAJA"
	TipoExpiracionProxima = "EXPIRACION_PROXIMA"
)

// Notificacion references a Producto by id.
type Notificacion struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductoID    string             `json:"productoId" bson:"productoId"`
	Mensaje       string             `json:"mensaje" bson:"mensaje"`
	Tipo          string             `json:"tipo" bson:"tipo"`
	FechaCreacion time.Time          `json:"fechaCreacion" bson:"fechaCreacion"`
	Leida         bool               `json:"leida" bson:"leida"`
}
