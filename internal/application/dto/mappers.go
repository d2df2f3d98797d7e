package dto

import "github.com/jhoicas/crm-ventas-api/internal/domain/entity"

// FromUser convierte la entidad a salida (sin password).
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: FormatTime(u.CreatedAt),
	}
}

func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Stock:     p.Stock,
		Price:     p.Price.InexactFloat64(),
		CreatedAt: FormatTime(p.CreatedAt),
	}
}

func FromClient(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Company:       c.Company,
		Email:         c.Email,
		Phone:         c.Phone,
		SalespersonID: c.SalespersonID,
		CreatedAt:     FormatTime(c.CreatedAt),
	}
}

func FromOrder(o *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return OrderResponse{
		ID:            o.ID,
		Items:         items,
		Total:         o.Total.InexactFloat64(),
		ClientID:      o.ClientID,
		SalespersonID: o.SalespersonID,
		Status:        o.Status,
		CreatedAt:     FormatTime(o.CreatedAt),
	}
}

// ToOrderItems convierte las líneas de entrada a entidad.
func ToOrderItems(in []OrderItemRequest) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		out = append(out, entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}
