package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MiembroInfo is the member snapshot embedded in a group: enough identity
// to render the member list without joining the users collection.
type MiembroInfo struct {
	ID       string `json:"id" bson:"id"`
	Username string `json:"username" bson:"username"`
	Email    string `json:"email" bson:"email"`
}

// GrupoFamiliar is the tenancy boundary: members, plus embedded snapshot
// copies of the group's Lugar and ListaCompra documents.
type GrupoFamiliar struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nombre        string             `json:"nombre" bson:"nombre"`
	Descripcion   string             `json:"descripcion" bson:"descripcion"`
	FechaCreacion time.Time          `json:"fechaCreacion" bson:"fechaCreacion"`
	CreadorID     string             `json:"creadorId" bson:"creadorId"`
	Miembros      []MiembroInfo      `json:"miembros" bson:"miembros"`
	Lugares       []Lugar            `json:"lugares" bson:"lugares"`
	ListasCompra  []ListaCompra      `json:"listasCompra" bson:"listasCompra"`
}

// EsMiembro reports whether userID appears in the member list.
func (g *GrupoFamiliar) EsMiembro(userID string) bool {
	for _, m := range g.Miembros {
		if m.ID == userID {
			return true
		}
	}
	return false
}
