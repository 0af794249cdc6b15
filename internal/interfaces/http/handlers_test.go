package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/internal/application/auth"
	"github.com/jhoicas/Finanzas-api/internal/application/usecase"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/ratelimit"
	apphttp "github.com/jhoicas/Finanzas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2025, time.November, 15, 12, 0, 0, 0, time.UTC)

type repos struct {
	users        repository.UserRepository
	companies    repository.CompanyRepository
	cards        repository.CardRepository
	transactions repository.TransactionRepository
	invoices     repository.InvoiceRepository
}

func memoryRepos() repos {
	s := memory.NewStore()
	return repos{
		users:        memory.NewUserRepository(s),
		companies:    memory.NewCompanyRepository(s),
		cards:        memory.NewCardRepository(s),
		transactions: memory.NewTransactionRepository(s),
		invoices:     memory.NewInvoiceRepository(s),
	}
}

func buildApp(r repos, cfg apphttp.ServerConfig) *fiber.App {
	clock := func() time.Time { return fixedNow }
	return apphttp.NewApp(cfg, apphttp.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(r.users),
		UserUC:        usecase.NewUserUseCase(r.users, r.companies),
		CompanyUC:     usecase.NewCompanyUseCase(r.companies, r.cards, r.transactions, r.invoices, clock),
		CardUC:        usecase.NewCardUseCase(r.cards, r.transactions, r.invoices, clock),
		InvoiceUC:     usecase.NewInvoiceUseCase(r.invoices, clock),
		TransactionUC: usecase.NewTransactionUseCase(r.transactions),
	})
}

func newTestApp() *fiber.App {
	return buildApp(memoryRepos(), apphttp.ServerConfig{AppName: "finanzas-test"})
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details []struct {
		Message string `json:"message"`
	} `json:"details"`
}

func (e envelope) detailMessages() []string {
	out := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		out = append(out, d.Message)
	}
	return out
}

func do(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), "cuerpo: %s", raw)
	}
	return resp.StatusCode, env
}

func data[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func createID(t *testing.T, app *fiber.App, path string, body any) string {
	t.Helper()
	status, env := do(t, app, http.MethodPost, path, body)
	require.Equal(t, http.StatusOK, status, env.Message)
	return data[map[string]any](t, env)["_id"].(string)
}

func seedCard(t *testing.T, app *fiber.App, limit float64, expires time.Time) (companyID, cardID string) {
	t.Helper()
	companyID = createID(t, app, "/api/companies", map[string]any{"userId": "u-1", "companyName": "Acme"})
	cardID = createID(t, app, "/api/cards", map[string]any{
		"cardNumber":     "4111-1111-1111-1111",
		"companyId":      companyID,
		"expirationDate": expires.Format(time.RFC3339),
		"creditLimit":    limit,
		"isActivated":    true,
	})
	return companyID, cardID
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestSignUpSignIn_FlujoCompleto(t *testing.T) {
	app := newTestApp()
	creds := map[string]string{"email": "ana@example.com", "password": "s3cret"}

	status, env := do(t, app, http.MethodPost, "/api/users/signup", creds)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "User created successfully", env.Message)
	userID := data[map[string]string](t, env)["userId"]
	require.NotEmpty(t, userID)

	status, env = do(t, app, http.MethodPost, "/api/users/signin", creds)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "User sign in successfully", env.Message)
	assert.Equal(t, userID, data[map[string]string](t, env)["userId"])

	status, env = do(t, app, http.MethodGet, "/api/users/"+userID, nil)
	require.Equal(t, http.StatusOK, status)
	user := data[map[string]string](t, env)
	assert.Equal(t, "ana@example.com", user["email"])
	assert.Equal(t, userID, user["id"])
	assert.NotContains(t, string(env.Data), "password")
}

func TestSignIn_PasswordIncorrecto401(t *testing.T) {
	app := newTestApp()
	do(t, app, http.MethodPost, "/api/users/signup", map[string]string{"email": "ana@example.com", "password": "s3cret"})

	status, env := do(t, app, http.MethodPost, "/api/users/signin", map[string]string{"email": "ana@example.com", "password": "otra"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid password", env.Message)
}

func TestSignIn_UsuarioInexistente404(t *testing.T) {
	app := newTestApp()
	status, env := do(t, app, http.MethodPost, "/api/users/signin", map[string]string{"email": "nadie@example.com", "password": "x"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", env.Message)
}

func TestSignUp_EmailDuplicado409(t *testing.T) {
	app := newTestApp()
	creds := map[string]string{"email": "ana@example.com", "password": "s3cret"}
	status, _ := do(t, app, http.MethodPost, "/api/users/signup", creds)
	require.Equal(t, http.StatusCreated, status)

	status, _ = do(t, app, http.MethodPost, "/api/users/signup", map[string]string{"email": "ANA@example.com", "password": "x"})
	assert.Equal(t, http.StatusConflict, status)
}

func TestSignUp_CuerpoInvalido400ConDetalles(t *testing.T) {
	app := newTestApp()
	status, env := do(t, app, http.MethodPost, "/api/users/signup", map[string]string{"email": "no-es-email"})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid data", env.Error)
	assert.ElementsMatch(t, []string{"email is Invalid email", "password is Required"}, env.detailMessages())
}

func TestGetUser_Inexistente404(t *testing.T) {
	app := newTestApp()
	status, env := do(t, app, http.MethodGet, "/api/users/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", env.Message)
}

func TestListCompaniesByUser_FiltraPorUsuario(t *testing.T) {
	app := newTestApp()
	createID(t, app, "/api/companies", map[string]any{"userId": "u-1", "companyName": "Acme"})
	createID(t, app, "/api/companies", map[string]any{"userId": "u-2", "companyName": "Otra"})
	createID(t, app, "/api/companies", map[string]any{"userId": "u-1", "companyName": "Beta"})

	status, env := do(t, app, http.MethodGet, "/api/users/u-1/companies", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Successfully fetched companies belongs to user", env.Message)
	list := data[[]map[string]any](t, env)
	require.Len(t, list, 2)
	assert.Equal(t, "Acme", list[0]["companyName"])
	assert.Equal(t, "Beta", list[1]["companyName"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresas y gasto disponible
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanies_CrearListarObtener(t *testing.T) {
	app := newTestApp()
	id := createID(t, app, "/api/companies", map[string]any{"userId": "u-1", "companyName": "Acme"})

	status, env := do(t, app, http.MethodGet, "/api/companies", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, data[[]map[string]any](t, env), 1)

	status, env = do(t, app, http.MethodGet, "/api/companies/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Acme", data[map[string]any](t, env)["companyName"])

	status, _ = do(t, app, http.MethodGet, "/api/companies/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCompanies_ListasVaciasSonArreglos(t *testing.T) {
	app := newTestApp()
	for _, path := range []string{"/api/companies", "/api/companies/x/cards", "/api/companies/x/invoices", "/api/companies/x/cards/allData"} {
		status, env := do(t, app, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, status, path)
		assert.JSONEq(t, "[]", string(env.Data), path)
	}
}

func TestCardsAllData_GastoDelMesEnCurso(t *testing.T) {
	app := newTestApp()
	companyID, cardID := seedCard(t, app, 1000, fixedNow.AddDate(1, 0, 0))

	for _, txn := range []struct {
		amount float64
		date   time.Time
	}{
		{-200, time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)},
		{300, time.Date(2025, time.November, 14, 10, 0, 0, 0, time.UTC)},
		{-500, time.Date(2025, time.October, 31, 10, 0, 0, 0, time.UTC)},
		{-50, time.Date(2024, time.November, 10, 10, 0, 0, 0, time.UTC)},
	} {
		createID(t, app, "/api/transactions", map[string]any{
			"cardId": cardID, "amount": txn.amount, "description": "AWS", "date": txn.date.Format(time.RFC3339),
		})
	}

	status, env := do(t, app, http.MethodGet, "/api/companies/"+companyID+"/cards/allData", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Successfully fetched company", env.Message)

	cards := data[[]struct {
		ID             string `json:"id"`
		IsActivated    bool   `json:"isActivated"`
		RemainingSpend struct {
			Used  float64 `json:"used"`
			Limit float64 `json:"limit"`
		} `json:"remainingSpend"`
		Transactions []map[string]any `json:"transactions"`
	}](t, env)
	require.Len(t, cards, 1)
	assert.Equal(t, cardID, cards[0].ID)
	assert.True(t, cards[0].IsActivated)
	assert.Equal(t, 500.0, cards[0].RemainingSpend.Used)
	assert.Equal(t, 1000.0, cards[0].RemainingSpend.Limit)
	assert.Len(t, cards[0].Transactions, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tarjetas
// ──────────────────────────────────────────────────────────────────────────────

func TestCard_CrearYObtener(t *testing.T) {
	app := newTestApp()
	_, cardID := seedCard(t, app, 1500.5, fixedNow.AddDate(1, 0, 0))

	status, env := do(t, app, http.MethodGet, "/api/cards/"+cardID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Successfully fetched card", env.Message)
	assert.Equal(t, 1500.5, data[map[string]any](t, env)["creditLimit"])

	status, env = do(t, app, http.MethodGet, "/api/cards/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Card not found", env.Message)
}

func TestCard_CrearSinCamposRequeridos400(t *testing.T) {
	app := newTestApp()
	status, env := do(t, app, http.MethodPost, "/api/cards", map[string]any{"cardNumber": "1", "creditLimit": -1})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid data", env.Error)
	assert.ElementsMatch(t, []string{
		"companyId is Required",
		"expirationDate is Required",
		"creditLimit is Number must be greater than or equal to 0",
		"isActivated is Required",
	}, env.detailMessages())
}

func TestCard_ActualizarLimite(t *testing.T) {
	app := newTestApp()
	_, cardID := seedCard(t, app, 1000, fixedNow.AddDate(1, 0, 0))

	status, env := do(t, app, http.MethodPatch, "/api/cards/"+cardID+"/limit", map[string]any{"newLimit": 2500})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Successfully update card limit", env.Message)
	assert.Equal(t, 2500.0, data[map[string]any](t, env)["creditLimit"])

	status, _ = do(t, app, http.MethodPatch, "/api/cards/no-existe/limit", map[string]any{"newLimit": 10})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, app, http.MethodPatch, "/api/cards/"+cardID+"/limit", map[string]any{"newLimit": -5})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCard_EstadoTarjetaVigente(t *testing.T) {
	app := newTestApp()
	_, cardID := seedCard(t, app, 1000, fixedNow.AddDate(1, 0, 0))

	status, env := do(t, app, http.MethodPatch, "/api/cards/"+cardID+"/state?isActivated=false", nil)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Successfully update card state", env.Message)
	assert.Equal(t, false, data[map[string]any](t, env)["isActivated"])
}

func TestCard_EstadoTarjetaVencidaNoSeModifica(t *testing.T) {
	app := newTestApp()
	_, cardID := seedCard(t, app, 1000, fixedNow.AddDate(0, -1, 0))

	status, env := do(t, app, http.MethodPatch, "/api/cards/"+cardID+"/state?isActivated=false", nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Card not found or expired", env.Message)

	_, env = do(t, app, http.MethodGet, "/api/cards/"+cardID, nil)
	assert.Equal(t, true, data[map[string]any](t, env)["isActivated"])
}

func TestCard_EstadoQueryInvalida400(t *testing.T) {
	app := newTestApp()
	_, cardID := seedCard(t, app, 1000, fixedNow.AddDate(1, 0, 0))

	status, env := do(t, app, http.MethodPatch, "/api/cards/"+cardID+"/state?isActivated=quizas", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid data", env.Error)
}

func TestCard_TransaccionesYFacturas(t *testing.T) {
	app := newTestApp()
	companyID, cardID := seedCard(t, app, 1000, fixedNow.AddDate(1, 0, 0))
	createID(t, app, "/api/transactions", map[string]any{"cardId": cardID, "amount": -10, "description": "café", "date": "2025-11-01"})
	createID(t, app, "/api/invoices", map[string]any{"companyId": companyID, "cardId": cardID, "amount": 10})

	status, env := do(t, app, http.MethodGet, "/api/cards/"+cardID+"/transactions", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Fetched transactions successfully", env.Message)
	assert.Len(t, data[[]map[string]any](t, env), 1)

	status, env = do(t, app, http.MethodGet, "/api/cards/"+cardID+"/invoices", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Fetched invoices successfully", env.Message)
	assert.Len(t, data[[]map[string]any](t, env), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoice_FechasPorDefecto(t *testing.T) {
	app := newTestApp()
	companyID, cardID := seedCard(t, app, 1000, fixedNow.AddDate(1, 0, 0))
	id := createID(t, app, "/api/invoices", map[string]any{"companyId": companyID, "cardId": cardID, "amount": 120})

	status, env := do(t, app, http.MethodGet, "/api/invoices/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	inv := data[map[string]any](t, env)
	assert.Equal(t, false, inv["isPaid"])
	assert.Equal(t, "2025-11-02T00:00:00Z", inv["createdAt"])
	assert.Equal(t, "2025-11-28T00:00:00Z", inv["dueDate"])
}

func TestInvoice_PagoParcialTotalYRechazos(t *testing.T) {
	app := newTestApp()
	companyID, cardID := seedCard(t, app, 1000, fixedNow.AddDate(1, 0, 0))
	id := createID(t, app, "/api/invoices", map[string]any{"companyId": companyID, "cardId": cardID, "amount": 1000})
	path := "/api/invoices/" + id

	status, env := do(t, app, http.MethodPatch, path, map[string]any{"amount": 400})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Invoices was paid successfully", env.Message)
	inv := data[map[string]any](t, env)
	assert.Equal(t, 600.0, inv["amount"])
	assert.Equal(t, false, inv["isPaid"])

	status, env = do(t, app, http.MethodPatch, path, map[string]any{"amount": 700})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Paid amount exceeds invoice amount", env.Message)

	status, env = do(t, app, http.MethodPatch, path, map[string]any{"amount": 600})
	require.Equal(t, http.StatusCreated, status)
	inv = data[map[string]any](t, env)
	assert.Equal(t, true, inv["isPaid"])
	assert.Equal(t, 600.0, inv["amount"], "el monto queda intacto al saldar")

	status, env = do(t, app, http.MethodPatch, path, map[string]any{"amount": 1})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Invoice is already paid or not exist", env.Message)
}

func TestInvoice_PagoSobreFacturaInexistente404(t *testing.T) {
	app := newTestApp()
	status, env := do(t, app, http.MethodPatch, "/api/invoices/no-existe", map[string]any{"amount": 1})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Invoice is already paid or not exist", env.Message)
}

func TestInvoice_PagoNoPositivo400(t *testing.T) {
	app := newTestApp()
	companyID, cardID := seedCard(t, app, 1000, fixedNow.AddDate(1, 0, 0))
	id := createID(t, app, "/api/invoices", map[string]any{"companyId": companyID, "cardId": cardID, "amount": 100})

	status, env := do(t, app, http.MethodPatch, "/api/invoices/"+id, map[string]any{"amount": 0})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []string{"amount is Number must be greater than 0"}, env.detailMessages())
}

func TestInvoice_ListarTodas(t *testing.T) {
	app := newTestApp()
	companyID, cardID := seedCard(t, app, 1000, fixedNow.AddDate(1, 0, 0))
	createID(t, app, "/api/invoices", map[string]any{"companyId": companyID, "cardId": cardID, "amount": 1})
	createID(t, app, "/api/invoices", map[string]any{"companyId": companyID, "cardId": cardID, "amount": 2, "isPaid": true})

	status, env := do(t, app, http.MethodGet, "/api/invoices", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Successfully fetched all invoices", env.Message)
	assert.Len(t, data[[]map[string]any](t, env), 2)

	status, env = do(t, app, http.MethodGet, "/api/companies/"+companyID+"/invoices", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, data[[]map[string]any](t, env), 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestTransaction_CrearYObtener(t *testing.T) {
	app := newTestApp()
	_, cardID := seedCard(t, app, 1000, fixedNow.AddDate(1, 0, 0))
	id := createID(t, app, "/api/transactions", map[string]any{
		"cardId": cardID, "amount": -42.5, "description": "Taxi", "date": "2025-11-10T08:30:00Z",
	})

	status, env := do(t, app, http.MethodGet, "/api/transactions/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Successfully fetched transaction", env.Message)
	txn := data[map[string]any](t, env)
	assert.Equal(t, -42.5, txn["amount"])
	assert.Equal(t, "Taxi", txn["description"])

	status, _ = do(t, app, http.MethodGet, "/api/transactions/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTransaction_FechaInvalida400(t *testing.T) {
	app := newTestApp()
	status, env := do(t, app, http.MethodPost, "/api/transactions", map[string]any{
		"cardId": "c-1", "amount": 1, "description": "x", "date": "ayer",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid data", env.Error)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores internos, rutas y middlewares
// ──────────────────────────────────────────────────────────────────────────────

// failingCompanies falla en toda lectura; panicCards entra en pánico.
type failingCompanies struct{ repository.CompanyRepository }

func (failingCompanies) List(context.Context) ([]*entity.Company, error) {
	return nil, errors.New("conexión perdida")
}

type panicCards struct{ repository.CardRepository }

func (panicCards) GetByID(context.Context, string) (*entity.Card, error) {
	panic("fallo inesperado")
}

func TestErrorInterno_Responde500SinDetalles(t *testing.T) {
	r := memoryRepos()
	r.companies = failingCompanies{r.companies}
	app := buildApp(r, apphttp.ServerConfig{})

	status, env := do(t, app, http.MethodGet, "/api/companies", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", env.Message)
	assert.NotContains(t, env.Message, "conexión")
}

func TestPanico_Responde500(t *testing.T) {
	r := memoryRepos()
	r.cards = panicCards{r.cards}
	app := buildApp(r, apphttp.ServerConfig{})

	status, env := do(t, app, http.MethodGet, "/api/cards/abc", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", env.Message)
}

func TestRutaInexistente404(t *testing.T) {
	app := newTestApp()
	status, _ := do(t, app, http.MethodGet, "/api/nada", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealthYMetrics(t *testing.T) {
	app := newTestApp()
	do(t, app, http.MethodGet, "/api/companies", nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "finanzas_api_http_requests_total")
}

func TestRateLimit_Responde429AlSuperarElLimite(t *testing.T) {
	limiter := ratelimit.NewMemory()
	defer limiter.Close()
	app := buildApp(memoryRepos(), apphttp.ServerConfig{Limiter: limiter, RateLimitPerMinute: 2})

	for i := 0; i < 2; i++ {
		status, _ := do(t, app, http.MethodGet, "/api/companies", nil)
		require.Equal(t, http.StatusOK, status)
	}
	status, env := do(t, app, http.MethodGet, "/api/companies", nil)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "Too many requests", env.Message)
}

func TestRequestID_EnCabecera(t *testing.T) {
	app := newTestApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}
