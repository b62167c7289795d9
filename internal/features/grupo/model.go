package grupo

import (
	"time"

	"homestock/internal/common/models"
)

// GrupoFamiliarDTO is the API shape for a group: member identities without
// the embedded lugar/lista snapshots.
type GrupoFamiliarDTO struct {
	ID            string               `json:"id"`
	Nombre        string               `json:"nombre"`
	Descripcion   string               `json:"descripcion"`
	FechaCreacion time.Time            `json:"fechaCreacion"`
	Miembros      []models.MiembroInfo `json:"miembros"`
	CreadorID     string               `json:"creadorId"`
}

func toDTO(g *models.GrupoFamiliar) *GrupoFamiliarDTO {
	return &GrupoFamiliarDTO{
		ID:            g.ID.Hex(),
		Nombre:        g.Nombre,
		Descripcion:   g.Descripcion,
		FechaCreacion: g.FechaCreacion,
		Miembros:      g.Miembros,
		CreadorID:     g.CreadorID,
	}
}
