package documentacion

import (
	"cmp"
	"slices"

	"github.com/jhoicas/gestion-docs/internal/domain/entity"
)

// Compare orden total de presentación: rango de estado y, a igual estado, días
// restantes ascendentes (infinito al final).
func Compare(a, b entity.ClassifiedRecord) int {
	if c := cmp.Compare(a.Status.Rank(), b.Status.Rank()); c != 0 {
		return c
	}
	return a.DaysLeft.Compare(b.DaysLeft)
}

// Sort devuelve una copia ordenada con Compare. El orden es estable: los registros
// iguales conservan el orden en que los devolvió el servicio.
func Sort(records []entity.ClassifiedRecord) []entity.ClassifiedRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, Compare)
	return out
}

// Summary conteos por estado de un conjunto clasificado.
type Summary struct {
	Total               int  `json:"total"`
	Vencidos            int  `json:"vencidos"`
	Pendientes          int  `json:"pendientes"`
	EsperandoAprobacion int  `json:"esperando_aprobacion"`
	Aprobados           int  `json:"aprobados"`
	Desconocidos        int  `json:"desconocidos"`
	ProximoVencimiento  *int `json:"proximo_vencimiento_dias,omitempty"` // mínimo de días entre aprobados con fecha
}

// Summarize cuenta los registros por estado.
func Summarize(records []entity.ClassifiedRecord) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case entity.StatusVencido:
			s.Vencidos++
		case entity.StatusPendiente:
			s.Pendientes++
		case entity.StatusEsperandoAprobacion:
			s.EsperandoAprobacion++
		case entity.StatusAprobado:
			s.Aprobados++
			if !r.DaysLeft.IsInfinite() && (s.ProximoVencimiento == nil || r.DaysLeft.Value() < *s.ProximoVencimiento) {
				d := r.DaysLeft.Value()
				s.ProximoVencimiento = &d
			}
		default:
			s.Desconocidos++
		}
	}
	return s
}
