package dto

// TopClientResponse fila de mejoresClientes. Cliente es lista por compatibilidad con el join original.
type TopClientResponse struct {
	Total  float64          `json:"total"`
	Client []ClientResponse `json:"cliente"`
}

// TopVendorResponse fila de mejoresVendedores.
type TopVendorResponse struct {
	Total  float64        `json:"total"`
	Vendor []UserResponse `json:"vendedor"`
}
