package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"

	"github.com/jhoicas/accounts-api/internal/application/dto"
)

// graphQLRequest cuerpo estándar de GraphQL sobre HTTP.
type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLHandler ejecuta consultas contra el esquema.
type GraphQLHandler struct {
	schema graphql.Schema
}

// NewGraphQLHandler construye el handler.
func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// Handle godoc
// @Summary      Ejecutar operación GraphQL
// @Tags         graphql
// @Accept       json
// @Produce      json
// @Param        body  body  graphQLRequest  true  "query, variables, operationName"
// @Success      200   {object}  graphql.Result
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /graphql [post]
func (h *GraphQLHandler) Handle(c *fiber.Ctx) error {
	req, err := h.parse(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_QUERY", Message: "query es requerido"})
	}
	// Un GET puede quedar en cachés o historiales: sólo lecturas.
	if c.Method() == fiber.MethodGet && isMutation(req.Query, req.OperationName) {
		c.Set(fiber.HeaderAllow, fiber.MethodPost)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{Code: "MUTATION_NOT_ALLOWED", Message: "las mutaciones requieren POST"})
	}

	res := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.UserContext(),
	})
	// Errores de sintaxis o validación no llegan a ejecutar: no hay data.
	if res.Data == nil && len(res.Errors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(res)
	}
	return c.JSON(res)
}

func (h *GraphQLHandler) parse(c *fiber.Ctx) (graphQLRequest, error) {
	var req graphQLRequest
	if c.Method() != fiber.MethodGet {
		err := c.BodyParser(&req)
		return req, err
	}
	req.Query = c.Query("query")
	req.OperationName = c.Query("operationName")
	if raw := c.Query("variables"); raw != "" {
		if err := c.App().Config().JSONDecoder([]byte(raw), &req.Variables); err != nil {
			return req, err
		}
	}
	return req, nil
}

// isMutation indica si la operación que se ejecutaría es una mutación.
// Un documento que no parsea devuelve false; la ejecución reporta el error.
func isMutation(query, operationName string) bool {
	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return false
	}
	var ops []*ast.OperationDefinition
	for _, def := range doc.Definitions {
		if op, ok := def.(*ast.OperationDefinition); ok {
			ops = append(ops, op)
		}
	}
	for _, op := range ops {
		if operationName != "" && (op.Name == nil || op.Name.Value != operationName) {
			continue
		}
		if operationName == "" && len(ops) > 1 {
			// graphql.Do rechaza la ambigüedad; basta con que alguna sea mutación.
			if op.Operation == ast.OperationTypeMutation {
				return true
			}
			continue
		}
		return op.Operation == ast.OperationTypeMutation
	}
	return false
}
