package erp

import "github.com/shopspring/decimal"

// derivationRecordType marks SKU-level rows in the catalog listing; parent
// and group records carry other values and are discarded.
const derivationRecordType = 2

// catalogEnvelope is the reply shape of the product-derivation listing.
type catalogEnvelope struct {
	Data catalogData `json:"data"`
}

type catalogData struct {
	Items   []catalogItem `json:"items"`
	Total   int64         `json:"total"`
	HasMore bool          `json:"has_more"`
}

// catalogItem tolerates the several historical key names the ERP has used
// for the same logical fields. Each fallback chain is resolved by the
// first-non-absent helpers below.
type catalogItem struct {
	TipoRegistro     int              `json:"tipo_registro"`
	Codigo           string           `json:"codigo"`
	Nome             string           `json:"nome"`
	DerivacaoNome    string           `json:"derivacao_nome"`
	DerivacaoID      *int64           `json:"derivacao_id"`
	IDDerivacao      *int64           `json:"id_derivacao"`
	ID               *int64           `json:"id"`
	CodigoPai        *string          `json:"codigo_pai"`
	CodigoPaiCamel   *string          `json:"codigoPai"`
	ProdutoCodigoPai *string          `json:"produto_codigo_pai"`
	Ativo            *bool            `json:"ativo"`
	Valor            *decimal.Decimal `json:"valor"`
	Midias           []catalogMedia   `json:"midias"`
}

type catalogMedia struct {
	Path        string `json:"path"`
	ArquivoNome string `json:"arquivo_nome"`
}

type stockEnvelope struct {
	Data []stockRow `json:"data"`
}

type stockRow struct {
	Produto                   string           `json:"produto"`
	QuantidadeDisponivelVenda *decimal.Decimal `json:"quantidadeDisponivelVenda"`
	QuantidadeReservadoSaida  *decimal.Decimal `json:"quantidadeReservadoSaida"`
	CustoMedio                *decimal.Decimal `json:"custoMedio"`
}

type priceEnvelope struct {
	Data []priceRow `json:"data"`
}

type priceRow struct {
	PrecoVenda      *decimal.Decimal `json:"precoVenda"`
	PrecoVendaSnake *decimal.Decimal `json:"preco_venda"`
}

// movementPayload is the body of the stock-movement submission.
type movementPayload struct {
	Produto         string           `json:"produto"`
	Deposito        string           `json:"deposito"`
	Quantidade      decimal.Decimal  `json:"quantidade"`
	Tipo            int              `json:"tipo"`
	TipoOperacao    int              `json:"tipoOperacao"`
	OrigemMovimento int              `json:"origemMovimento"`
	Observacao      string           `json:"observacao"`
	ValorMovimento  *decimal.Decimal `json:"valorMovimento,omitempty"`
}

// pricePayload is one element of the array-of-one price submission body.
type pricePayload struct {
	Produto     string          `json:"produto"`
	TabelaPreco string          `json:"tabelaPreco"`
	PrecoVenda  decimal.Decimal `json:"precoVenda"`
}

func firstInt64(candidates ...*int64) *int64 {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

func firstString(candidates ...*string) string {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return ""
}

func firstDecimal(candidates ...*decimal.Decimal) *decimal.Decimal {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}
