package gql

import (
	"fmt"
	"reflect"

	"github.com/graphql-go/graphql"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decimalHook convierte los Float/Int de GraphQL a decimal.Decimal (precio, total).
func decimalHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != decimalType {
		return data, nil
	}
	switch v := data.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case string:
		return decimal.NewFromString(v)
	}
	return data, nil
}

// decodeArg vuelca el argumento name (objeto input ya validado por el esquema) en dst,
// usando los tags json de los DTO. Los campos omitidos quedan en nil.
func decodeArg(p graphql.ResolveParams, name string, dst interface{}) error {
	raw, ok := p.Args[name]
	if !ok || raw == nil {
		return fmt.Errorf("%w: falta el argumento %s", domain.ErrInvalidInput, name)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     dst,
		DecodeHook: decimalHook,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// stringArg lee un argumento escalar String/ID.
func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}
