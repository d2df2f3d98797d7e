package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
)

// GraphQLRequest cuerpo estándar de una petición GraphQL.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// GraphQLHandler ejecuta operaciones contra el esquema.
type GraphQLHandler struct {
	schema graphql.Schema
}

// NewGraphQLHandler construye el handler.
func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// Post atiende POST /graphql con cuerpo JSON.
func (h *GraphQLHandler) Post(c *fiber.Ctx) error {
	var in GraphQLRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.execute(c, in)
}

// Get atiende GET /graphql?query=...&variables=...
func (h *GraphQLHandler) Get(c *fiber.Ctx) error {
	in := GraphQLRequest{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}
	if raw := c.Query("variables"); raw != "" {
		if err := c.App().Config().JSONDecoder([]byte(raw), &in.Variables); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_VARIABLES", Message: "variables inválidas"})
		}
	}
	return h.execute(c, in)
}

func (h *GraphQLHandler) execute(c *fiber.Ctx, in GraphQLRequest) error {
	if in.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query es requerido"})
	}
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  in.Query,
		VariableValues: in.Variables,
		OperationName:  in.OperationName,
		Context:        c.UserContext(),
	})
	return c.JSON(result)
}
