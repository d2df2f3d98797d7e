package dto

// CreateClientRequest entrada para nuevoCliente. El vendedor sale del token.
type CreateClientRequest struct {
	FirstName string  `json:"nombre"`
	LastName  string  `json:"apellido"`
	Company   string  `json:"empresa"`
	Email     string  `json:"email"`
	Phone     *string `json:"telefono"`
}

// UpdateClientRequest entrada parcial para actualizarCliente.
type UpdateClientRequest struct {
	FirstName *string `json:"nombre"`
	LastName  *string `json:"apellido"`
	Company   *string `json:"empresa"`
	Email     *string `json:"email"`
	Phone     *string `json:"telefono"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"nombre"`
	LastName      string  `json:"apellido"`
	Company       string  `json:"empresa"`
	Email         string  `json:"email"`
	Phone         *string `json:"telefono"`
	SalespersonID string  `json:"vendedor"`
	CreatedAt     string  `json:"creado"`
}
