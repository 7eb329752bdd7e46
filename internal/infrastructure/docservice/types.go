package docservice

import "github.com/jhoicas/gestion-docs/internal/domain/entity"

// ── Cuerpos de request ─────────────────────────────────────────────────────────

type authenticateRequest struct {
	Denominacion string `json:"Denominacion"`
	Clave        string `json:"Clave"`
	SecretKey    string `json:"secretKey"`
}

type periodo struct {
	Mes       int `json:"Mes"`
	Anio      int `json:"Año"`
	EntidadID int `json:"EntidadId"`
}

type managementRequest struct {
	Periodo                      periodo `json:"Periodo"`
	IncluirDocumentacionAprobada bool    `json:"IncluirDocumentacionAprobada"`
}

// ── Cuerpos de respuesta ───────────────────────────────────────────────────────

type secretKeyResponse struct {
	Valor entity.Text `json:"Valor"`
}

func newManagementRequest(q entity.ManagementQuery) managementRequest {
	return managementRequest{
		Periodo: periodo{
			Mes:       q.Month,
			Anio:      q.Year,
			EntidadID: q.EntityID,
		},
		IncluirDocumentacionAprobada: q.IncludeApproved,
	}
}
