package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/accounts-api/internal/application/access"
	"github.com/jhoicas/accounts-api/internal/application/auth"
	"github.com/jhoicas/accounts-api/internal/application/dto"
	"github.com/jhoicas/accounts-api/internal/application/operations"
	"github.com/jhoicas/accounts-api/internal/application/usecase"
	"github.com/jhoicas/accounts-api/internal/infrastructure/memory"
	"github.com/jhoicas/accounts-api/internal/infrastructure/metrics"
	"github.com/jhoicas/accounts-api/internal/interfaces/gql"
	apphttp "github.com/jhoicas/accounts-api/internal/interfaces/http"
	"github.com/jhoicas/accounts-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildApp arma la aplicación completa sobre el almacenamiento en memoria.
func buildApp(t *testing.T) (*fiber.App, *metrics.Metrics) {
	t.Helper()
	store := memory.NewStore()
	creds := auth.NewCredentials(auth.JWTConfig{Secret: "test-secret", TTL: time.Hour, Issuer: "accounts-api-test", BcryptCost: bcrypt.MinCost})
	denylist := memory.NewDenylist()
	accounts := usecase.NewAccountUseCase(store.Accounts(), creds)
	users := usecase.NewUserUseCase(store.Users(), store.Accounts())
	authUC := auth.NewAuthUseCase(accounts, users, store.Accounts(), memory.NewTxRunner(store), creds, denylist)
	svc := operations.NewService(access.NewGuard(creds, store.Accounts(), denylist), authUC, accounts, users)

	m := metrics.New("accounts_test")
	schema, err := gql.NewSchema(svc, logger.Nop(), m)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Schema: schema, Log: logger.Nop(), Metrics: m, AppName: "accounts-api"})
	return app, m
}

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message    string                 `json:"message"`
		Extensions map[string]interface{} `json:"extensions"`
	} `json:"errors"`
}

func postGraphQL(t *testing.T, app *fiber.App, token, query string, vars map[string]interface{}) (int, gqlResponse) {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"query": query, "variables": vars})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out gqlResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario register → login → getAccounts
// ──────────────────────────────────────────────────────────────────────────────

func TestGraphQL_RegisterLoginGetAccounts(t *testing.T) {
	app, _ := buildApp(t)

	status, res := postGraphQL(t, app, "", `
mutation($acc: RegisterAccountInput!, $usr: RegisterUserInput!) {
  register(regAccountInput: $acc, regUserInput: $usr) { success message account { id } }
}`, map[string]interface{}{
		"acc": map[string]interface{}{
			"username": "alice", "email": "a@x.com", "password": "pw1", "confirmPassword": "pw1", "accessType": "ADMIN",
		},
		"usr": map[string]interface{}{"firstName": "Alice", "lastName": "Doe"},
	})
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, res.Errors)

	var reg struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Account struct {
			ID string `json:"id"`
		} `json:"account"`
	}
	require.NoError(t, json.Unmarshal(res.Data["register"], &reg))
	assert.True(t, reg.Success)
	assert.Equal(t, "Registered Successfully!", reg.Message)

	_, res = postGraphQL(t, app, "", `
mutation { login(loginInput: {username: "alice", password: "pw1"}) { success token account { id } } }`, nil)
	require.Empty(t, res.Errors)
	var login struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		Account struct {
			ID string `json:"id"`
		} `json:"account"`
	}
	require.NoError(t, json.Unmarshal(res.Data["login"], &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, reg.Account.ID, login.Account.ID)

	_, res = postGraphQL(t, app, login.Token, `{ getAccounts { id username } }`, nil)
	require.Empty(t, res.Errors)
	var list []struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(res.Data["getAccounts"], &list))
	require.NotEmpty(t, list)
	assert.Equal(t, "alice", list[0].Username)
}

func TestGraphQL_SinTokenEsUnauthenticated(t *testing.T) {
	app, _ := buildApp(t)

	status, res := postGraphQL(t, app, "", `{ getUsers { id } }`, nil)
	assert.Equal(t, http.StatusOK, status, "los errores de resolver viajan con 200")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Token is invalid!", res.Errors[0].Message)
	assert.Equal(t, "UNAUTHENTICATED", res.Errors[0].Extensions["code"])
}

func TestGraphQL_TokenFalsoEsUnauthenticated(t *testing.T) {
	app, _ := buildApp(t)

	_, res := postGraphQL(t, app, "token.invalido.aqui", `{ getUsers { id } }`, nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "UNAUTHENTICATED", res.Errors[0].Extensions["code"])
}

func TestGraphQL_ConsultaMalFormada(t *testing.T) {
	app, _ := buildApp(t)

	status, res := postGraphQL(t, app, "", `{ getUsers { `, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, res.Errors)
}

func TestGraphQL_SinQuery(t *testing.T) {
	app, _ := buildApp(t)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader([]byte(`{"query":""}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_QUERY")
}

func TestGraphQL_PorGET(t *testing.T) {
	app, _ := buildApp(t)

	q := url.Values{}
	q.Set("query", `query($id: ID!) { getAccountDetails(accountId: $id) { id } }`)
	q.Set("variables", `{"id":"x"}`)
	req := httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out gqlResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "UNAUTHENTICATED", out.Errors[0].Extensions["code"])
}

func getGraphQL(t *testing.T, app *fiber.App, params url.Values) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/graphql?"+params.Encode(), nil), -1)
	require.NoError(t, err)
	return resp
}

func TestGraphQL_PorGETRechazaMutaciones(t *testing.T) {
	app, m := buildApp(t)

	q := url.Values{}
	q.Set("query", `mutation { login(loginInput: {username: "alice", password: "pw1"}) { success } }`)
	resp := getGraphQL(t, app, q)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, fiber.MethodPost, resp.Header.Get(fiber.HeaderAllow))
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MUTATION_NOT_ALLOWED", body.Code)

	n, err := testutil.GatherAndCount(m.Registry(), "accounts_test_graphql_operations_total")
	require.NoError(t, err)
	assert.Zero(t, n, "la mutación no llega a ejecutarse")
}

func TestGraphQL_PorGETEligeOperacionPorNombre(t *testing.T) {
	app, _ := buildApp(t)
	doc := `query Lista { getUsers { id } } mutation Salir { logout { success } }`

	q := url.Values{}
	q.Set("query", doc)
	q.Set("operationName", "Salir")
	resp := getGraphQL(t, app, q)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	q.Set("operationName", "Lista")
	resp = getGraphQL(t, app, q)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out gqlResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "UNAUTHENTICATED", out.Errors[0].Extensions["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Health y métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app, _ := buildApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "accounts-api", body["service"])
}

func TestMetrics_ExponeContadores(t *testing.T) {
	app, _ := buildApp(t)
	postGraphQL(t, app, "", `{ getUsers { id } }`, nil)

	// Una petición posterior reutiliza el buffer de la anterior: la etiqueta
	// "POST" ya registrada no debe cambiar.
	health, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	health.Body.Close()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `accounts_test_graphql_operations_total{operation="getUsers",outcome="UNAUTHENTICATED"} 1`)
	assert.Contains(t, string(body), `accounts_test_http_request_duration_seconds_count{method="POST",route="/graphql",status="200"} 1`)
	assert.Contains(t, string(body), `accounts_test_http_request_duration_seconds_count{method="GET",route="/health",status="200"} 1`)
}
