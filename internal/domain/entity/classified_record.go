package entity

import (
	"strconv"

	"github.com/jhoicas/gestion-docs/internal/domain"
)

// StatusKind estado de una documentación (conjunto cerrado).
type StatusKind string

const (
	StatusVencido             StatusKind = "Vencido"
	StatusPendiente           StatusKind = "Pendiente"
	StatusEsperandoAprobacion StatusKind = "EsperandoAprobacion"
	StatusAprobado            StatusKind = "Aprobado"
	StatusUnknown             StatusKind = "Unknown"
)

// Rank orden de presentación: vencidos primero, desconocidos al final.
func (s StatusKind) Rank() int {
	switch s {
	case StatusVencido:
		return 0
	case StatusPendiente:
		return 1
	case StatusEsperandoAprobacion:
		return 2
	case StatusAprobado:
		return 3
	default:
		return 99
	}
}

// DaysLeft días hasta el vencimiento: un entero o infinito (sin fecha utilizable).
type DaysLeft struct {
	days     int
	infinite bool
}

// Days devuelve un DaysLeft finito.
func Days(n int) DaysLeft { return DaysLeft{days: n} }

// InfiniteDays devuelve +∞.
func InfiniteDays() DaysLeft { return DaysLeft{infinite: true} }

// IsInfinite indica si no hay fecha de vencimiento utilizable.
func (d DaysLeft) IsInfinite() bool { return d.infinite }

// Value días restantes; 0 si es infinito.
func (d DaysLeft) Value() int { return d.days }

// Compare devuelve -1, 0 o +1; infinito es mayor que cualquier valor finito.
func (d DaysLeft) Compare(o DaysLeft) int {
	switch {
	case d.infinite && o.infinite:
		return 0
	case d.infinite:
		return 1
	case o.infinite:
		return -1
	case d.days < o.days:
		return -1
	case d.days > o.days:
		return 1
	}
	return 0
}

func (d DaysLeft) String() string {
	if d.infinite {
		return "∞"
	}
	return strconv.Itoa(d.days)
}

// MarshalJSON infinito se serializa como null.
func (d DaysLeft) MarshalJSON() ([]byte, error) {
	if d.infinite {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(d.days)), nil
}

// DisplayFields columnas de texto de la tabla.
type DisplayFields struct {
	Document   string `json:"documento"`
	Service    string `json:"servicio"`
	EntityName string `json:"denominacion"`
	Plate      string `json:"patente"`
}

// ClassifiedRecord registro clasificado, derivado de un Documentacion. Solo lectura.
type ClassifiedRecord struct {
	Status     StatusKind                     `json:"estado"`
	StatusText string                         `json:"estado_texto"` // "Vencido", "12 días", "N/A", ...
	DaysLeft   DaysLeft                       `json:"dias_restantes"`
	Display    DisplayFields                  `json:"campos"`
	Warnings   []domain.ClassificationWarning `json:"-"`
}
