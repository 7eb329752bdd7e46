package entity

// Credentials datos de login ingresados por el usuario o restaurados de una sesión guardada.
type Credentials struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	KeepLoggedIn bool   `json:"keep_logged_in"`
}

// SessionInfo token del servicio de documentación y entidad del usuario autenticado.
type SessionInfo struct {
	Token    string
	EntityID int
}

// AuthResponse respuesta del endpoint de autenticación (solo los campos que se consumen).
type AuthResponse struct {
	Token             string            `json:"Token"`
	EntidadesContacto []EntidadContacto `json:"EntidadesContacto"`
}

// EntidadContacto entidad asociada al usuario; EntidadID es nil si el servicio no la envía.
type EntidadContacto struct {
	EntidadID *int `json:"EntidadId"`
}
