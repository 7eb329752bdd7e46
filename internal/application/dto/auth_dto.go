package dto

// LoginRequest credenciales del servicio de documentación.
type LoginRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	KeepLoggedIn bool   `json:"keep_logged_in"`
}

// LoginResponse token local de la API y entidad autenticada.
type LoginResponse struct {
	Token     string `json:"token"`
	EntidadID int    `json:"entidad_id"`
	ExpiresIn int    `json:"expires_in"` // segundos
}
