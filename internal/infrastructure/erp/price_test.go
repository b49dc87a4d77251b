package erp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogozord/backend/internal/domain/integration"
)

func TestFetchPrice(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/api/v1/listPreco", r.URL.Path)
		w.Write([]byte(`{"data":[{"precoVenda":49.9}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	price, err := client.FetchPrice(context.Background(), "A1")
	require.NoError(t, err)

	assert.Equal(t, []string{"2"}, gotQuery["tabelaPreco"])
	assert.Equal(t, []string{"A1"}, gotQuery["produto"])
	assert.Equal(t, []string{"1"}, gotQuery["limit"])

	require.NotNil(t, price)
	assert.True(t, price.Equal(dec("49.9")))
}

func TestFetchPrice_SnakeCaseFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"preco_venda":12.34}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	price, err := client.FetchPrice(context.Background(), "A1")
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.True(t, price.Equal(dec("12.34")))
}

func TestFetchPrice_NoRowReturnsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	price, err := client.FetchPrice(context.Background(), "A1")
	require.NoError(t, err)
	assert.Nil(t, price)
}

func TestFetchPrice_RequiresPriceList(t *testing.T) {
	client := newTestClient(t, "http://erp.invalid", func(c *Config) { c.PriceListID = "" })
	_, err := client.FetchPrice(context.Background(), "A1")
	assert.ErrorIs(t, err, integration.ErrPriceListNotConfigured)
}

func TestPostPrice_SendsArrayOfOne(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	err := client.PostPrice(context.Background(), "A1", dec("29.9"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"produto":"A1","tabelaPreco":"2","precoVenda":"29.9"}]`, string(gotBody))
}

func TestPostPrice_RequiresPriceList(t *testing.T) {
	client := newTestClient(t, "http://erp.invalid", func(c *Config) { c.PriceListID = "" })
	err := client.PostPrice(context.Background(), "A1", dec("29.9"))
	assert.ErrorIs(t, err, integration.ErrPriceListNotConfigured)
}
