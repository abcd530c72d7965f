package dto

// LoginRequest carries the demo credentials. The shipped identity provider
// ignores them and resolves the fixed profile; a real provider would not.
type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

type PerfilResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Email     string  `json:"email"`
	Rol       string  `json:"rol"`
	EmpresaID *string `json:"empresa_id"`
}

type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int            `json:"expires_in"`
	Perfil      PerfilResponse `json:"perfil"`
}
