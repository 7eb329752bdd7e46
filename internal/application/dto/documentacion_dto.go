package dto

import (
	"github.com/jhoicas/gestion-docs/internal/domain/documentacion"
	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// PeriodoResponse período consultado.
type PeriodoResponse struct {
	Mes       int `json:"mes"`
	Anio      int `json:"anio"`
	EntidadID int `json:"entidad_id"`
}

// DocumentacionesResponse listado clasificado y ordenado, con resumen por estado.
type DocumentacionesResponse struct {
	Periodo PeriodoResponse           `json:"periodo"`
	Items   []entity.ClassifiedRecord `json:"items"`
	Resumen documentacion.Summary     `json:"resumen"`
}
