package erp

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/catalogozord/backend/internal/domain/integration"
)

// FetchPrice reads the current selling price of a SKU from the configured
// price list. Returns nil when the list has no row for the SKU.
func (c *Client) FetchPrice(ctx context.Context, sku string) (*decimal.Decimal, error) {
	if c.config.PriceListID == "" {
		return nil, integration.ErrPriceListNotConfigured
	}

	query := url.Values{}
	query.Set("tabelaPreco", c.config.PriceListID)
	query.Set("produto", sku)
	query.Set("limit", "1")

	var envelope priceEnvelope
	if err := c.doRequest(ctx, "GET", "/api/v1/listPreco", query, nil, &envelope); err != nil {
		return nil, err
	}

	if len(envelope.Data) == 0 {
		return nil, nil
	}
	row := envelope.Data[0]
	return firstDecimal(row.PrecoVenda, row.PrecoVendaSnake), nil
}

// PostPrice writes a new selling price for a SKU on the configured price
// list. The ERP expects an array-of-one body and replies with a bare
// acknowledgement.
func (c *Client) PostPrice(ctx context.Context, sku string, price decimal.Decimal) error {
	if c.config.PriceListID == "" {
		return integration.ErrPriceListNotConfigured
	}

	body := []pricePayload{{
		Produto:     sku,
		TabelaPreco: c.config.PriceListID,
		PrecoVenda:  price,
	}}

	return c.doRequest(ctx, "POST", "/api/v1/listPreco", nil, body, nil)
}
