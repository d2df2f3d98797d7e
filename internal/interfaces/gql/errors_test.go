package gql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
)

func TestCodeOf(t *testing.T) {
	cases := map[error]string{
		domain.ErrNotFound:           CodeNotFound,
		domain.ErrForbidden:          CodeForbidden,
		domain.ErrConflict:           CodeConflict,
		domain.ErrInsufficientStock:  CodeInsufficientStock,
		domain.ErrInvalidCredentials: CodeInvalidCredentials,
		domain.ErrInvalidToken:       CodeInvalidToken,
		domain.ErrUnauthenticated:    CodeUnauthenticated,
		domain.ErrInvalidInput:       CodeBadUserInput,
		errors.New("db caída"):       CodeInternal,
	}
	for err, code := range cases {
		assert.Equal(t, code, CodeOf(err), err.Error())
		assert.Equal(t, code, CodeOf(fmt.Errorf("%w: detalle", err)), "envuelto: "+err.Error())
	}
}

func TestToGraphQLError_OcultaErroresInternos(t *testing.T) {
	err := toGraphQLError(zerolog.Nop(), "obtenerProductos", errors.New("pq: connection refused"))

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, CodeInternal, gerr.Code)
	assert.NotContains(t, gerr.Message, "connection refused")
	assert.Equal(t, map[string]interface{}{"code": CodeInternal}, gerr.Extensions())
}

func TestToGraphQLError_ConservaMensajeDeDominio(t *testing.T) {
	err := toGraphQLError(zerolog.Nop(), "nuevoPedido", fmt.Errorf("%w: Laptop", domain.ErrInsufficientStock))

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, CodeInsufficientStock, gerr.Code)
	assert.Contains(t, gerr.Message, "Laptop")
}

func TestDecodeArg(t *testing.T) {
	p := graphql.ResolveParams{Args: map[string]interface{}{
		"input": map[string]interface{}{
			"pedido":  []interface{}{map[string]interface{}{"id": "p1", "cantidad": 2}},
			"total":   150.25,
			"cliente": "c1",
		},
	}}

	var in dto.CreateOrderRequest
	require.NoError(t, decodeArg(p, "input", &in))
	assert.Equal(t, "c1", in.ClientID)
	assert.True(t, decimal.RequireFromString("150.25").Equal(in.Total))
	require.Len(t, in.Items, 1)
	assert.Equal(t, dto.OrderItemRequest{ProductID: "p1", Quantity: 2}, in.Items[0])
	assert.Empty(t, in.Status)
}

func TestDecodeArg_Parcial(t *testing.T) {
	p := graphql.ResolveParams{Args: map[string]interface{}{
		"input": map[string]interface{}{"precio": 90},
	}}

	var in dto.UpdateProductRequest
	require.NoError(t, decodeArg(p, "input", &in))
	assert.Nil(t, in.Name)
	assert.Nil(t, in.Stock)
	require.NotNil(t, in.Price)
	assert.True(t, decimal.NewFromInt(90).Equal(*in.Price))
}

func TestDecodeArg_Faltante(t *testing.T) {
	var in dto.LoginRequest
	err := decodeArg(graphql.ResolveParams{Args: map[string]interface{}{}}, "input", &in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
