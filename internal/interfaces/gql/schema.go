// Package gql define el esquema GraphQL del CRM y sus resolvers sobre los casos de uso.
package gql

import (
	"context"

	"github.com/graphql-go/graphql"
	"github.com/jhoicas/crm-ventas-api/internal/application/analytics"
	"github.com/jhoicas/crm-ventas-api/internal/application/auth"
	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/application/orders"
	"github.com/jhoicas/crm-ventas-api/internal/application/usecase"
	"github.com/jhoicas/crm-ventas-api/internal/domain/access"
	"github.com/rs/zerolog"
)

// Resolvers dependencias de los resolvers.
type Resolvers struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	ClientUC  *usecase.ClientUseCase
	OrderUC   *orders.OrderUseCase
	ReportUC  *analytics.ReportUseCase
	Log       zerolog.Logger
}

// Mensajes de las mutaciones de borrado.
const (
	msgProductDeleted = "Producto eliminado"
	msgClientDeleted  = "Cliente eliminado"
	msgOrderDeleted   = "Pedido eliminado"
)

// NewSchema construye el esquema con queries y mutations.
func NewSchema(r Resolvers) (graphql.Schema, error) {
	t := newTypes()
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: r.queries(t)}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: r.mutations(t)}),
	})
}

type resolveFn func(ctx context.Context, p graphql.ResolveParams) (interface{}, error)

// wrap pasa el contexto de la petición y traduce los errores de dominio a códigos.
func (r Resolvers) wrap(fn resolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		ctx := p.Context
		if ctx == nil {
			ctx = context.Background()
		}
		out, err := fn(ctx, p)
		if err != nil {
			return nil, toGraphQLError(r.Log, p.Info.FieldName, err)
		}
		return out, nil
	}
}

func idArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
}

func inputArgs(input graphql.Input) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
	}
}

func (r Resolvers) queries(t *types) graphql.Fields {
	return graphql.Fields{
		// Usuarios
		"obtenerUsuario": &graphql.Field{
			Type: t.usuario,
			Resolve: r.wrap(func(ctx context.Context, _ graphql.ResolveParams) (interface{}, error) {
				return r.AuthUC.CurrentUser(ctx)
			}),
		},

		// Productos (públicos)
		"obtenerProductos": &graphql.Field{
			Type: graphql.NewList(t.producto),
			Resolve: r.wrap(func(ctx context.Context, _ graphql.ResolveParams) (interface{}, error) {
				return r.ProductUC.List(ctx)
			}),
		},
		"obtenerProducto": &graphql.Field{
			Type: t.producto,
			Args: idArgs(),
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				return r.ProductUC.GetByID(ctx, stringArg(p, "id"))
			}),
		},
		"buscarProducto": &graphql.Field{
			Type: graphql.NewList(t.producto),
			Args: graphql.FieldConfigArgument{
				"texto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				return r.ProductUC.Search(ctx, stringArg(p, "texto"))
			}),
		},

		// Clientes
		"obtenerClientes": &graphql.Field{
			Type: graphql.NewList(t.cliente),
			Resolve: r.wrap(func(ctx context.Context, _ graphql.ResolveParams) (interface{}, error) {
				return r.ClientUC.ListAll(ctx, auth.CallerID(ctx))
			}),
		},
		"obtenerClientesVendedor": &graphql.Field{
			Type: graphql.NewList(t.cliente),
			Resolve: r.wrap(func(ctx context.Context, _ graphql.ResolveParams) (interface{}, error) {
				return r.ClientUC.ListMine(ctx, auth.CallerID(ctx))
			}),
		},
		"obtenerCliente": &graphql.Field{
			Type: t.cliente,
			Args: idArgs(),
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				return r.ClientUC.GetByID(ctx, auth.CallerID(ctx), stringArg(p, "id"))
			}),
		},

		// Pedidos
		"obtenerPedidos": &graphql.Field{
			Type: graphql.NewList(t.pedido),
			Resolve: r.wrap(func(ctx context.Context, _ graphql.ResolveParams) (interface{}, error) {
				return r.OrderUC.ListAll(ctx, auth.CallerID(ctx))
			}),
		},
		"obtenerPedidosVendedor": &graphql.Field{
			Type: graphql.NewList(t.pedido),
			Resolve: r.wrap(func(ctx context.Context, _ graphql.ResolveParams) (interface{}, error) {
				return r.OrderUC.ListMine(ctx, auth.CallerID(ctx))
			}),
		},
		"obtenerPedido": &graphql.Field{
			Type: t.pedido,
			Args: idArgs(),
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				return r.OrderUC.GetByID(ctx, auth.CallerID(ctx), stringArg(p, "id"))
			}),
		},
		"obtenerPedidosEstado": &graphql.Field{
			Type: graphql.NewList(t.pedido),
			Args: graphql.FieldConfigArgument{
				"estado": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.estadoPedido)},
			},
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				return r.OrderUC.ListMineByStatus(ctx, auth.CallerID(ctx), stringArg(p, "estado"))
			}),
		},

		// Reportes (públicos)
		"mejoresClientes": &graphql.Field{
			Type: graphql.NewList(t.topCliente),
			Resolve: r.wrap(func(ctx context.Context, _ graphql.ResolveParams) (interface{}, error) {
				return r.ReportUC.TopClients(ctx)
			}),
		},
		"mejoresVendedores": &graphql.Field{
			Type: graphql.NewList(t.topVendedor),
			Resolve: r.wrap(func(ctx context.Context, _ graphql.ResolveParams) (interface{}, error) {
				return r.ReportUC.TopVendors(ctx)
			}),
		},
	}
}

func (r Resolvers) mutations(t *types) graphql.Fields {
	return graphql.Fields{
		// Usuarios
		"nuevoUsuario": &graphql.Field{
			Type: t.usuario,
			Args: inputArgs(t.usuarioInput),
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				var in dto.RegisterRequest
				if err := decodeArg(p, "input", &in); err != nil {
					return nil, err
				}
				return r.AuthUC.Register(ctx, in)
			}),
		},
		"autenticarUsuario": &graphql.Field{
			Type: t.token,
			Args: inputArgs(t.autenticarInput),
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				var in dto.LoginRequest
				if err := decodeArg(p, "input", &in); err != nil {
					return nil, err
				}
				return r.AuthUC.Authenticate(ctx, in)
			}),
		},

		// Productos (requieren identidad)
		"nuevoProducto": &graphql.Field{
			Type: t.producto,
			Args: inputArgs(t.productoInput),
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				if err := access.RequireCaller(auth.CallerID(ctx)); err != nil {
					return nil, err
				}
				var in dto.CreateProductRequest
				if err := decodeArg(p, "input", &in); err != nil {
					return nil, err
				}
				return r.ProductUC.Create(ctx, in)
			}),
		},
		"actualizarProducto": &graphql.Field{
			Type: t.producto,
			Args: graphql.FieldConfigArgument{
				"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.productoUpdateInput)},
			},
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				if err := access.RequireCaller(auth.CallerID(ctx)); err != nil {
					return nil, err
				}
				var in dto.UpdateProductRequest
				if err := decodeArg(p, "input", &in); err != nil {
					return nil, err
				}
				return r.ProductUC.Update(ctx, stringArg(p, "id"), in)
			}),
		},
		"eliminarProducto": &graphql.Field{
			Type: graphql.String,
			Args: idArgs(),
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				if err := access.RequireCaller(auth.CallerID(ctx)); err != nil {
					return nil, err
				}
				if err := r.ProductUC.Delete(ctx, stringArg(p, "id")); err != nil {
					return nil, err
				}
				return msgProductDeleted, nil
			}),
		},

		// Clientes
		"nuevoCliente": &graphql.Field{
			Type: t.cliente,
			Args: inputArgs(t.clienteInput),
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				var in dto.CreateClientRequest
				if err := decodeArg(p, "input", &in); err != nil {
					return nil, err
				}
				return r.ClientUC.Create(ctx, auth.CallerID(ctx), in)
			}),
		},
		"actualizarCliente": &graphql.Field{
			Type: t.cliente,
			Args: graphql.FieldConfigArgument{
				"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.clienteUpdateInput)},
			},
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				var in dto.UpdateClientRequest
				if err := decodeArg(p, "input", &in); err != nil {
					return nil, err
				}
				return r.ClientUC.Update(ctx, auth.CallerID(ctx), stringArg(p, "id"), in)
			}),
		},
		"eliminarCliente": &graphql.Field{
			Type: graphql.String,
			Args: idArgs(),
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				if err := r.ClientUC.Delete(ctx, auth.CallerID(ctx), stringArg(p, "id")); err != nil {
					return nil, err
				}
				return msgClientDeleted, nil
			}),
		},

		// Pedidos
		"nuevoPedido": &graphql.Field{
			Type: t.pedido,
			Args: inputArgs(t.pedidoInput),
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				var in dto.CreateOrderRequest
				if err := decodeArg(p, "input", &in); err != nil {
					return nil, err
				}
				return r.OrderUC.Create(ctx, auth.CallerID(ctx), in)
			}),
		},
		"actualizarPedido": &graphql.Field{
			Type: t.pedido,
			Args: graphql.FieldConfigArgument{
				"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(t.pedidoUpdateInput)},
			},
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				var in dto.UpdateOrderRequest
				if err := decodeArg(p, "input", &in); err != nil {
					return nil, err
				}
				return r.OrderUC.Update(ctx, auth.CallerID(ctx), stringArg(p, "id"), in)
			}),
		},
		"eliminarPedido": &graphql.Field{
			Type: graphql.String,
			Args: idArgs(),
			Resolve: r.wrap(func(ctx context.Context, p graphql.ResolveParams) (interface{}, error) {
				if err := r.OrderUC.Delete(ctx, auth.CallerID(ctx), stringArg(p, "id")); err != nil {
					return nil, err
				}
				return msgOrderDeleted, nil
			}),
		},
	}
}
