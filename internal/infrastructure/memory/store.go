// Package memory implementa los puertos de persistencia en memoria. Se usa en
// desarrollo local (STORAGE=memory) y como doble de pruebas de los casos de uso.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/crm-ventas-api/internal/application/orders"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/reporting"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

var (
	_ repository.UserRepository    = (*UserRepo)(nil)
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.ClientRepository  = (*ClientRepo)(nil)
	_ repository.OrderRepository   = (*OrderRepo)(nil)
	_ repository.ReportRepository  = (*ReportRepo)(nil)
	_ orders.TxRunner              = (*Store)(nil)
)

// Store guarda copias de las entidades. Una transacción toma el lock completo,
// por lo que las transacciones quedan serializadas.
type Store struct {
	mu       sync.Mutex
	users    map[string]entity.User
	products map[string]entity.Product
	clients  map[string]entity.Client
	orders   map[string]entity.Order
	seq      map[string]int // orden de inserción; los listados salen en ese orden
	next     int
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:    make(map[string]entity.User),
		products: make(map[string]entity.Product),
		clients:  make(map[string]entity.Client),
		orders:   make(map[string]entity.Order),
		seq:      make(map[string]int),
	}
}

func (s *Store) Users() *UserRepo       { return &UserRepo{s: s} }
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }
func (s *Store) Clients() *ClientRepo   { return &ClientRepo{s: s} }
func (s *Store) Orders() *OrderRepo     { return &OrderRepo{s: s} }
func (s *Store) Reports() *ReportRepo   { return &ReportRepo{s: s} }

// RunOrder ejecuta fn con el lock tomado; si falla restaura productos y pedidos.
func (s *Store) RunOrder(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make(map[string]entity.Product, len(s.products))
	for k, v := range s.products {
		products[k] = v
	}
	ordersSnap := make(map[string]entity.Order, len(s.orders))
	for k, v := range s.orders {
		ordersSnap[k] = v
	}

	if err := fn(&ProductRepo{s: s, inTx: true}, &OrderRepo{s: s, inTx: true}); err != nil {
		s.products = products
		s.orders = ordersSnap
		return err
	}
	return nil
}

func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) track(id string) {
	s.next++
	s.seq[id] = s.next
}

func (s *Store) sortByInsertion(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return s.seq[ids[i]] < s.seq[ids[j]] })
}

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	defer r.s.lock(false)()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrConflict
		}
	}
	r.s.users[user.ID] = *user
	r.s.track(user.ID)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	defer r.s.lock(false)()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	defer r.s.lock(false)()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.User, error) {
	defer r.s.lock(false)()
	var out []*entity.User
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			out = append(out, &u)
		}
	}
	return out, nil
}

// ProductRepo productos en memoria.
type ProductRepo struct {
	s    *Store
	inTx bool
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	defer r.s.lock(r.inTx)()
	r.s.products[p.ID] = *p
	r.s.track(p.ID)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	return r.list(func(entity.Product) bool { return true }, -1), nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	defer r.s.lock(r.inTx)()
	cur, ok := r.s.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Name, cur.Stock, cur.Price, cur.UpdatedAt = p.Name, p.Stock, p.Price, p.UpdatedAt
	cur.Version++
	p.Version = cur.Version
	r.s.products[p.ID] = cur
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

// Search coincide si alguna palabra del texto aparece en el nombre (sin distinguir mayúsculas).
func (r *ProductRepo) Search(_ context.Context, text string, limit int) ([]*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	words := strings.Fields(strings.ToLower(text))
	return r.list(func(p entity.Product) bool {
		name := strings.ToLower(p.Name)
		for _, w := range words {
			if strings.Contains(name, w) {
				return true
			}
		}
		return false
	}, limit), nil
}

func (r *ProductRepo) DecrementStock(_ context.Context, id string, quantity, expectedVersion int) error {
	defer r.s.lock(r.inTx)()
	p, ok := r.s.products[id]
	if !ok || p.Version != expectedVersion || p.Stock < quantity {
		return domain.ErrConflict
	}
	p.Stock -= quantity
	p.Version++
	r.s.products[id] = p
	return nil
}

func (r *ProductRepo) list(match func(entity.Product) bool, limit int) []*entity.Product {
	ids := make([]string, 0, len(r.s.products))
	for id, p := range r.s.products {
		if match(p) {
			ids = append(ids, id)
		}
	}
	r.s.sortByInsertion(ids)
	if limit >= 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		p := r.s.products[id]
		out = append(out, &p)
	}
	return out
}

// ClientRepo clientes en memoria.
type ClientRepo struct{ s *Store }

func (r *ClientRepo) Create(_ context.Context, c *entity.Client) error {
	defer r.s.lock(false)()
	if r.emailTaken(c.Email, c.ID) {
		return domain.ErrConflict
	}
	r.s.clients[c.ID] = *c
	r.s.track(c.ID)
	return nil
}

func (r *ClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	defer r.s.lock(false)()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ClientRepo) GetByEmail(_ context.Context, email string) (*entity.Client, error) {
	defer r.s.lock(false)()
	for _, c := range r.s.clients {
		if c.Email == email {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ClientRepo) List(_ context.Context) ([]*entity.Client, error) {
	defer r.s.lock(false)()
	return r.list(func(entity.Client) bool { return true }), nil
}

func (r *ClientRepo) ListBySalesperson(_ context.Context, salespersonID string) ([]*entity.Client, error) {
	defer r.s.lock(false)()
	return r.list(func(c entity.Client) bool { return c.SalespersonID == salespersonID }), nil
}

func (r *ClientRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.Client, error) {
	defer r.s.lock(false)()
	var out []*entity.Client
	for _, id := range ids {
		if c, ok := r.s.clients[id]; ok {
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ClientRepo) Update(_ context.Context, c *entity.Client) error {
	defer r.s.lock(false)()
	if r.emailTaken(c.Email, c.ID) {
		return domain.ErrConflict
	}
	if _, ok := r.s.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.clients[c.ID] = *c
	return nil
}

func (r *ClientRepo) Delete(_ context.Context, id string) error {
	defer r.s.lock(false)()
	if _, ok := r.s.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.clients, id)
	return nil
}

func (r *ClientRepo) emailTaken(email, selfID string) bool {
	for _, c := range r.s.clients {
		if c.Email == email && c.ID != selfID {
			return true
		}
	}
	return false
}

func (r *ClientRepo) list(match func(entity.Client) bool) []*entity.Client {
	ids := make([]string, 0, len(r.s.clients))
	for id, c := range r.s.clients {
		if match(c) {
			ids = append(ids, id)
		}
	}
	r.s.sortByInsertion(ids)
	out := make([]*entity.Client, 0, len(ids))
	for _, id := range ids {
		c := r.s.clients[id]
		out = append(out, &c)
	}
	return out
}

// OrderRepo pedidos en memoria.
type OrderRepo struct {
	s    *Store
	inTx bool
}

func (r *OrderRepo) Create(_ context.Context, o *entity.Order) error {
	defer r.s.lock(r.inTx)()
	r.s.orders[o.ID] = cloneOrder(*o)
	r.s.track(o.ID)
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	defer r.s.lock(r.inTx)()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	o = cloneOrder(o)
	return &o, nil
}

func (r *OrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	defer r.s.lock(r.inTx)()
	return r.list(func(entity.Order) bool { return true }), nil
}

func (r *OrderRepo) ListBySalesperson(_ context.Context, salespersonID string) ([]*entity.Order, error) {
	defer r.s.lock(r.inTx)()
	return r.list(func(o entity.Order) bool { return o.SalespersonID == salespersonID }), nil
}

func (r *OrderRepo) ListBySalespersonAndStatus(_ context.Context, salespersonID, status string) ([]*entity.Order, error) {
	defer r.s.lock(r.inTx)()
	return r.list(func(o entity.Order) bool {
		return o.SalespersonID == salespersonID && o.Status == status
	}), nil
}

func (r *OrderRepo) Update(_ context.Context, o *entity.Order) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (r *OrderRepo) Delete(_ context.Context, id string) error {
	defer r.s.lock(r.inTx)()
	if _, ok := r.s.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}

func (r *OrderRepo) list(match func(entity.Order) bool) []*entity.Order {
	ids := make([]string, 0, len(r.s.orders))
	for id, o := range r.s.orders {
		if match(o) {
			ids = append(ids, id)
		}
	}
	r.s.sortByInsertion(ids)
	out := make([]*entity.Order, 0, len(ids))
	for _, id := range ids {
		o := cloneOrder(r.s.orders[id])
		out = append(out, &o)
	}
	return out
}

func cloneOrder(o entity.Order) entity.Order {
	o.Items = append([]entity.OrderItem(nil), o.Items...)
	return o
}

// ReportRepo agregados sobre pedidos COMPLETED.
type ReportRepo struct{ s *Store }

func (r *ReportRepo) CompletedTotalsByClient(_ context.Context) ([]reporting.Total, error) {
	defer r.s.lock(false)()
	return r.totals(func(o entity.Order) string { return o.ClientID }), nil
}

func (r *ReportRepo) CompletedTotalsBySalesperson(_ context.Context) ([]reporting.Total, error) {
	defer r.s.lock(false)()
	return r.totals(func(o entity.Order) string { return o.SalespersonID }), nil
}

func (r *ReportRepo) totals(key func(entity.Order) string) []reporting.Total {
	sums := make(map[string]decimal.Decimal)
	for _, o := range r.s.orders {
		if o.Status != entity.OrderStatusCompleted {
			continue
		}
		sums[key(o)] = sums[key(o)].Add(o.Total)
	}
	out := make([]reporting.Total, 0, len(sums))
	for k, v := range sums {
		out = append(out, reporting.Total{Key: k, Total: v})
	}
	return out
}
