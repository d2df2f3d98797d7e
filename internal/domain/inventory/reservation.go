package inventory

import "github.com/jhoicas/crm-ventas-api/internal/domain/entity"

// Reserve calcula la existencia resultante al apartar quantity unidades de p.
// Devuelve ok=false si la cantidad pedida supera la existencia actual (servicio de dominio).
func Reserve(p *entity.Product, quantity int) (remaining int, ok bool) {
	if !p.HasStock(quantity) {
		return p.Stock, false
	}
	return p.Stock - quantity, true
}
