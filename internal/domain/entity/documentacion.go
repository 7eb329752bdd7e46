package entity

import (
	"bytes"
	"encoding/json"
	"time"
)

// Documentacion registro de documentación requerida tal como lo devuelve el servicio remoto.
// Todos los campos son opcionales: un campo ausente queda en su valor cero.
type Documentacion struct {
	DocumentacionDenominacion Text     `json:"DocumentacionDenominacion"`
	ServicioDenominacion      Text     `json:"ServicioDenominacion"`
	DenominacionEnte          Text     `json:"DenominacionEnte"`
	VehiculoPatente           Text     `json:"VehiculoPatente"`
	Archivo                   *Archivo `json:"Archivo"`
}

// Archivo archivo cargado para la documentación (estado y vencimiento).
type Archivo struct {
	EstadoDenominacion Text `json:"EstadoDenominacion"`
	FechaVencimiento   Text `json:"FechaVencimiento"`
}

// UnmarshalJSON ignora valores que no son objeto (el registro queda sin archivo).
func (a *Archivo) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		*a = Archivo{}
		return nil
	}
	type plain Archivo
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*a = Archivo(v)
	return nil
}

// Text valor escalar tolerante: acepta string, número o booleano (se guarda su texto)
// y null (cadena vacía). Objetos y arrays se guardan como JSON crudo.
type Text string

// UnmarshalJSON implementa json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		*t = Text(b)
	}
	return nil
}

// String devuelve el texto.
func (t Text) String() string { return string(t) }

// ManagementQuery consulta de gestión documental para un período y entidad.
type ManagementQuery struct {
	Month           int // 1-12
	Year            int
	EntityID        int
	IncludeApproved bool
}

// NewManagementQuery construye la consulta del mes calendario de now.
func NewManagementQuery(now time.Time, entityID int, includeApproved bool) ManagementQuery {
	return ManagementQuery{
		Month:           int(now.Month()),
		Year:            now.Year(),
		EntityID:        entityID,
		IncludeApproved: includeApproved,
	}
}
