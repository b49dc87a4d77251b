package erp

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/catalogozord/backend/internal/domain/integration"
)

const (
	minPageLimit = 1
	maxPageLimit = 100
)

var absoluteURLPattern = regexp.MustCompile(`(?i)^https?://`)

// ListCatalogPage fetches one page of the product-derivation listing,
// keeping only SKU-level records and normalizing the historical field
// variants into canonical items.
func (c *Client) ListCatalogPage(ctx context.Context, page, limit int) (*integration.CatalogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < minPageLimit {
		limit = minPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("page", strconv.Itoa(page))

	path := fmt.Sprintf("/api/v2/site/frontend/produto/%d", c.config.StoreID)

	var envelope catalogEnvelope
	if err := c.doRequest(ctx, "GET", path, query, nil, &envelope); err != nil {
		return nil, err
	}

	result := &integration.CatalogPage{
		Total:   envelope.Data.Total,
		HasMore: envelope.Data.HasMore,
		Items:   make([]integration.CatalogItem, 0, len(envelope.Data.Items)),
	}

	for _, item := range envelope.Data.Items {
		if item.TipoRegistro != derivationRecordType {
			continue
		}
		result.Items = append(result.Items, c.mapCatalogItem(item))
	}

	return result, nil
}

func (c *Client) mapCatalogItem(item catalogItem) integration.CatalogItem {
	mapped := integration.CatalogItem{
		SKU:          strings.TrimSpace(item.Codigo),
		Name:         composeName(item.Nome, item.DerivacaoNome),
		ParentCode:   strings.TrimSpace(firstString(item.CodigoPai, item.CodigoPaiCamel, item.ProdutoCodigoPai)),
		DerivationID: firstInt64(item.DerivacaoID, item.IDDerivacao, item.ID),
		Active:       item.Ativo == nil || *item.Ativo,
		Price:        item.Valor,
	}
	if len(item.Midias) > 0 {
		mapped.ImageURL = c.BuildImageURL(item.Midias[0].Path, item.Midias[0].ArquivoNome)
	}
	return mapped
}

// composeName joins the parent product name with the derivation name. The
// derivation part is omitted when either side is blank.
func composeName(nome, derivacaoNome string) string {
	nome = strings.TrimSpace(nome)
	derivacaoNome = strings.TrimSpace(derivacaoNome)
	if nome != "" && derivacaoNome != "" {
		return nome + " - " + derivacaoNome
	}
	return nome
}

// BuildImageURL derives the display URL for a product image. Absolute media
// paths are joined with the file name directly; relative paths go through
// the configured CDN base. Missing inputs yield an empty string, never an
// error.
func (c *Client) BuildImageURL(mediaPath, fileName string) string {
	return buildImageURL(c.config.CDNBaseURL, mediaPath, fileName)
}

func buildImageURL(cdnBase, mediaPath, fileName string) string {
	mediaPath = strings.TrimSpace(mediaPath)
	fileName = strings.TrimSpace(fileName)
	if mediaPath == "" || fileName == "" {
		return ""
	}

	if absoluteURLPattern.MatchString(mediaPath) {
		return strings.TrimRight(mediaPath, "/") + "/" + fileName
	}

	cdnBase = strings.TrimSpace(cdnBase)
	if cdnBase == "" {
		return ""
	}
	return strings.TrimRight(cdnBase, "/") + "/" + strings.Trim(mediaPath, "/") + "/" + fileName
}
