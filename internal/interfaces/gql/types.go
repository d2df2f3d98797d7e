package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

// types tipos de salida y de entrada del esquema. Los nombres de campo coinciden con los
// tags json de los DTO, así que basta el resolver por defecto de graphql-go.
type types struct {
	usuario     *graphql.Object
	token       *graphql.Object
	producto    *graphql.Object
	cliente     *graphql.Object
	pedido      *graphql.Object
	topCliente  *graphql.Object
	topVendedor *graphql.Object

	estadoPedido *graphql.Enum

	usuarioInput        *graphql.InputObject
	autenticarInput     *graphql.InputObject
	productoInput       *graphql.InputObject
	productoUpdateInput *graphql.InputObject
	clienteInput        *graphql.InputObject
	clienteUpdateInput  *graphql.InputObject
	pedidoInput         *graphql.InputObject
	pedidoUpdateInput   *graphql.InputObject
}

func newTypes() *types {
	t := &types{}

	t.estadoPedido = graphql.NewEnum(graphql.EnumConfig{
		Name: "EstadoPedido",
		Values: graphql.EnumValueConfigMap{
			"PENDIENTE":  &graphql.EnumValueConfig{Value: entity.OrderStatusPending},
			"COMPLETADO": &graphql.EnumValueConfig{Value: entity.OrderStatusCompleted},
			"CANCELADO":  &graphql.EnumValueConfig{Value: entity.OrderStatusCancelled},
		},
	})

	t.usuario = graphql.NewObject(graphql.ObjectConfig{
		Name: "Usuario",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.ID},
			"nombre":   &graphql.Field{Type: graphql.String},
			"apellido": &graphql.Field{Type: graphql.String},
			"email":    &graphql.Field{Type: graphql.String},
			"creado":   &graphql.Field{Type: graphql.String},
		},
	})

	t.token = graphql.NewObject(graphql.ObjectConfig{
		Name: "Token",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.String},
		},
	})

	t.producto = graphql.NewObject(graphql.ObjectConfig{
		Name: "Producto",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.ID},
			"nombre":     &graphql.Field{Type: graphql.String},
			"existencia": &graphql.Field{Type: graphql.Int},
			"precio":     &graphql.Field{Type: graphql.Float},
			"creado":     &graphql.Field{Type: graphql.String},
		},
	})

	t.cliente = graphql.NewObject(graphql.ObjectConfig{
		Name: "Cliente",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.ID},
			"nombre":   &graphql.Field{Type: graphql.String},
			"apellido": &graphql.Field{Type: graphql.String},
			"empresa":  &graphql.Field{Type: graphql.String},
			"email":    &graphql.Field{Type: graphql.String},
			"telefono": &graphql.Field{Type: graphql.String},
			"vendedor": &graphql.Field{Type: graphql.ID},
			"creado":   &graphql.Field{Type: graphql.String},
		},
	})

	pedidoGrupo := graphql.NewObject(graphql.ObjectConfig{
		Name: "PedidoGrupo",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.ID},
			"cantidad": &graphql.Field{Type: graphql.Int},
		},
	})

	t.pedido = graphql.NewObject(graphql.ObjectConfig{
		Name: "Pedido",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.ID},
			"pedido":   &graphql.Field{Type: graphql.NewList(pedidoGrupo)},
			"total":    &graphql.Field{Type: graphql.Float},
			"cliente":  &graphql.Field{Type: graphql.ID},
			"vendedor": &graphql.Field{Type: graphql.ID},
			"estado":   &graphql.Field{Type: t.estadoPedido},
			"creado":   &graphql.Field{Type: graphql.String},
		},
	})

	t.topCliente = graphql.NewObject(graphql.ObjectConfig{
		Name: "TopCliente",
		Fields: graphql.Fields{
			"total":   &graphql.Field{Type: graphql.Float},
			"cliente": &graphql.Field{Type: graphql.NewList(t.cliente)},
		},
	})

	t.topVendedor = graphql.NewObject(graphql.ObjectConfig{
		Name: "TopVendedor",
		Fields: graphql.Fields{
			"total":    &graphql.Field{Type: graphql.Float},
			"vendedor": &graphql.Field{Type: graphql.NewList(t.usuario)},
		},
	})

	t.usuarioInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UsuarioInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"apellido": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.autenticarInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AutenticarInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	t.productoInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"existencia": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"precio":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	// Edición parcial: solo se tocan los campos presentes.
	t.productoUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductoUpdateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"existencia": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"precio":     &graphql.InputObjectFieldConfig{Type: graphql.Float},
		},
	})

	t.clienteInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ClienteInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"apellido": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"empresa":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"telefono": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	t.clienteUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ClienteUpdateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"apellido": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"empresa":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"telefono": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	pedidoProductoInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PedidoProductoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"cantidad": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	t.pedidoInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PedidoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"pedido":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(pedidoProductoInput)))},
			"total":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"cliente": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"estado":  &graphql.InputObjectFieldConfig{Type: t.estadoPedido},
		},
	})

	t.pedidoUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PedidoUpdateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"pedido":  &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(pedidoProductoInput))},
			"total":   &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"cliente": &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"estado":  &graphql.InputObjectFieldConfig{Type: t.estadoPedido},
		},
	})

	return t
}
