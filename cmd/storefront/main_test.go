package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/shopledger/internal/config"
	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/nikolayk812/shopledger/internal/port"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartOutput struct {
	Items []struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
	TotalItems      int             `json:"totalItems"`
	DiscountedTotal decimal.Decimal `json:"discountedTotal"`
}

// setupEnv points the CLI at a fake API and returns the storage dir.
func setupEnv(t *testing.T) string {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/api/products/{id}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") != "p1" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"product not found"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.Product{
			ID:       "p1",
			Name:     "Mug",
			Price:    decimal.NewFromInt(10),
			Discount: decimal.NewFromInt(50),
		})
	})

	r.Post("/api/export/{entity}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "entity") != "orders" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var body struct {
			Format string `json:"format"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Format != "csv" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("id,total\no1,20\n"))
	})
	r.Get("/api/users", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.User{
			{ID: "u1", Email: "ann@example.com", Name: "Ann", Role: "admin", Status: "active"},
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	dir := t.TempDir()

	t.Setenv("SHOPLEDGER_API_BASE_URL", srv.URL+"/api")
	t.Setenv("SHOPLEDGER_STORAGE_DRIVER", "file")
	t.Setenv("SHOPLEDGER_STORAGE_DIR", dir)
	t.Setenv("SHOPLEDGER_LOG_LEVEL", "error")

	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root, closeApp := newRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(t.Context())
	closeApp()

	return out.String(), err
}

func cartOf(t *testing.T, out string) cartOutput {
	t.Helper()

	var c cartOutput
	require.NoError(t, json.Unmarshal([]byte(out), &c), out)
	return c
}

func TestCLI_CartSurvivesRestarts(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "cart", "add", "p1", "--qty", "2")
	require.NoError(t, err)

	out, err := execute(t, "cart", "show")
	require.NoError(t, err)

	cart := cartOf(t, out)
	assert.Equal(t, 2, cart.TotalItems)
	assert.True(t, decimal.NewFromInt(10).Equal(cart.DiscountedTotal))

	out, err = execute(t, "cart", "qty", "p1", "5")
	require.NoError(t, err)
	assert.Equal(t, 5, cartOf(t, out).TotalItems)

	_, err = execute(t, "cart", "qty", "p1", "five")
	require.ErrorContains(t, err, "quantity[five] is not an integer")

	_, err = execute(t, "wishlist", "add", "p1")
	require.NoError(t, err)

	out, err = execute(t, "wishlist", "move", "p1")
	require.NoError(t, err)
	assert.Equal(t, 6, cartOf(t, out).TotalItems)

	_, err = execute(t, "wishlist", "move", "p1")
	require.ErrorContains(t, err, "product[p1] is not on the wishlist")

	out, err = execute(t, "cart", "show", "--owner", "alice")
	require.NoError(t, err)
	assert.Empty(t, cartOf(t, out).Items)

	out, err = execute(t, "cart", "clear")
	require.NoError(t, err)
	assert.Zero(t, cartOf(t, out).TotalItems)
}

func TestCLI_Errors(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "cart", "add", "missing")
	require.ErrorContains(t, err, "status 404")

	out, err := execute(t, "cart", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "could not add product missing to cart")

	_, err = execute(t, "cart", "show", "--owner", "")
	require.EqualError(t, err, "owner is empty")

	for _, owner := range []string{"..", "../x", "a/b", `a\b`} {
		_, err = execute(t, "cart", "show", "--owner", owner)
		require.ErrorContains(t, err, "must not contain path separators or dot segments", owner)
	}

	t.Setenv("SHOPLEDGER_STORAGE_DRIVER", "sqlite")
	_, err = execute(t, "cart", "show")
	require.ErrorContains(t, err, "storage.driver[sqlite] is not supported")
}

func TestOpenStorage(t *testing.T) {
	ctx := t.Context()

	s, closeFn, err := openStorage(ctx, config.Storage{Driver: config.DriverMemory}, "guest")
	require.NoError(t, err)
	defer closeFn()

	s.Set("k", []byte("v"))
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", string(v))

	_, _, err = openStorage(ctx, config.Storage{Driver: "nope"}, "guest")
	require.EqualError(t, err, "storage.driver[nope] is not supported")
}

func TestCLI_AdminBulk(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "admin", "bulk", "orders", "refund", "o1")
	require.EqualError(t, err, "order action[refund] is not valid")

	_, err = execute(t, "admin", "bulk", "users", "deactivate")
	require.Error(t, err)
}

func TestCLI_SnapshotStoresNumericAmounts(t *testing.T) {
	dir := setupEnv(t)

	_, err := execute(t, "cart", "add", "p1", "--qty", "2")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, defaultOwner, "cart.json"))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"price":10`)
	assert.NotContains(t, string(data), `"price":"10"`)
}

func TestCLI_ClosesStorageOnCommandError(t *testing.T) {
	setupEnv(t)

	opened, closed := 0, 0
	orig := storageOpener
	storageOpener = func(ctx context.Context, cfg config.Storage, owner string) (port.Storage, func(), error) {
		s, closeFn, err := orig(ctx, cfg, owner)
		if err != nil {
			return nil, nil, err
		}
		opened++
		return s, func() {
			closed++
			closeFn()
		}, nil
	}
	t.Cleanup(func() { storageOpener = orig })

	_, err := execute(t, "cart", "add", "missing")
	require.Error(t, err)

	_, err = execute(t, "cart", "show")
	require.NoError(t, err)

	assert.Equal(t, 2, opened)
	assert.Equal(t, 2, closed)
}

func TestCLI_AdminExport(t *testing.T) {
	setupEnv(t)
	out := t.TempDir()

	csvPath := filepath.Join(out, "orders.csv")
	stdout, err := execute(t, "admin", "export", "orders", "--format", "csv", "-o", csvPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote 15 bytes to "+csvPath)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "id,total\no1,20\n", string(data))

	_, err = execute(t, "admin", "export", "products", "--format", "csv", "-o", filepath.Join(out, "p.csv"))
	require.ErrorContains(t, err, "status 404")

	xlsxPath := filepath.Join(out, "users.xlsx")
	_, err = execute(t, "admin", "export", "users", "--local", "--format", "xlsx", "-o", xlsxPath)
	require.NoError(t, err)

	data, err = os.ReadFile(xlsxPath)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(data[:2]))

	_, err = execute(t, "admin", "export", "users", "--local", "--format", "csv")
	require.EqualError(t, err, "local export supports only xlsx, got csv")

	_, err = execute(t, "admin", "export", "analytics", "--local", "--format", "xlsx")
	require.EqualError(t, err, "analytics can only be exported by the server")

	_, err = execute(t, "admin", "export", "orders", "--format", "docx")
	require.EqualError(t, err, "export format[docx] is not valid")
}
