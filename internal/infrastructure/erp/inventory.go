package erp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/catalogozord/backend/internal/domain/integration"
)

// Movement direction flags and origin codes understood by the ERP.
const (
	movementTypeIncrease = 1
	movementTypeReduce   = 2

	operationManualAdjustment = 1

	originManualEntry = 1
	originCostBearing = 2
)

const inventoryQueryLimit = 50

// FetchInventory reads the live stock position for a SKU. An empty data
// array means the ERP has no inventory rows for it; that is returned as an
// empty slice, not an error.
func (c *Client) FetchInventory(ctx context.Context, sku string) ([]integration.StockLevel, error) {
	query := url.Values{}
	query.Set("produto", sku)
	query.Set("limit", fmt.Sprintf("%d", inventoryQueryLimit))
	query.Set("offset", "0")
	if c.config.WarehouseID != "" {
		query.Set("deposito", c.config.WarehouseID)
	}

	var envelope stockEnvelope
	if err := c.doRequest(ctx, "GET", "/api/v1/listEstoque", query, nil, &envelope); err != nil {
		return nil, err
	}

	levels := make([]integration.StockLevel, 0, len(envelope.Data))
	for _, row := range envelope.Data {
		level := integration.StockLevel{SKU: sku}
		if row.Produto != "" {
			level.SKU = row.Produto
		}
		if row.QuantidadeDisponivelVenda != nil {
			level.Available = *row.QuantidadeDisponivelVenda
		}
		if row.QuantidadeReservadoSaida != nil {
			level.Reserved = *row.QuantidadeReservadoSaida
		}
		if row.CustoMedio != nil {
			level.AverageCost = *row.CustoMedio
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// PostMovement writes a manual stock adjustment. The signed quantity is
// encoded as a direction flag plus absolute quantity; a movement value is
// attached only for positive movements carrying a positive unit cost, and
// the observation field records who moved what and why.
func (c *Client) PostMovement(ctx context.Context, mov integration.Movement) (json.RawMessage, error) {
	if c.config.WarehouseID == "" {
		return nil, integration.ErrWarehouseNotConfigured
	}

	payload := buildMovementPayload(c.config.WarehouseID, mov)

	var response json.RawMessage
	if err := c.doRequest(ctx, "POST", "/api/v1/movimentoEstoque", nil, payload, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func buildMovementPayload(warehouseID string, mov integration.Movement) movementPayload {
	reduce := mov.Quantity.IsNegative()

	payload := movementPayload{
		Produto:         mov.SKU,
		Deposito:        warehouseID,
		Quantidade:      mov.Quantity.Abs(),
		Tipo:            movementTypeIncrease,
		TipoOperacao:    operationManualAdjustment,
		OrigemMovimento: originManualEntry,
		Observacao:      movementObservation(mov),
	}
	if reduce {
		payload.Tipo = movementTypeReduce
	}

	// Only positive movements with a positive unit cost carry a value; the
	// ERP derives reduction costs from its own average cost.
	if !reduce && mov.UnitCost != nil && mov.UnitCost.IsPositive() {
		value := mov.Quantity.Abs().Mul(*mov.UnitCost).Round(2)
		payload.ValorMovimento = &value
		payload.OrigemMovimento = originCostBearing
	}

	return payload
}

func movementObservation(mov integration.Movement) string {
	sign := "+"
	if mov.Quantity.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("[painel] %s%s | motivo: %s | por: %s",
		sign, mov.Quantity.Abs().String(), mov.Reason, mov.Actor)
}
