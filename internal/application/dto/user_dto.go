package dto

// RegisterRequest entrada para registro (nuevoUsuario). El password se hashea en el caso de uso.
type RegisterRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest entrada para autenticarUsuario.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	CreatedAt string `json:"creado,omitempty"`
}

// TokenResponse salida de autenticarUsuario.
type TokenResponse struct {
	Token string `json:"token"`
}
