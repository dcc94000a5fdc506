package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yuzvak/nhh-storefront/internal/application/ports"
	"github.com/yuzvak/nhh-storefront/internal/domain/pricing"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/http/response"
)

type CatalogHandler struct {
	source ports.CatalogSource
	table  pricing.Table
}

func NewCatalogHandler(source ports.CatalogSource, table pricing.Table) *CatalogHandler {
	return &CatalogHandler{source: source, table: table}
}

type SubcategoryDTO struct {
	Subcategory string        `json:"subcategory"`
	Band        pricing.Range `json:"band"`
	Products    []ProductDTO  `json:"products"`
}

func (h *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, toProductDTOs(h.source.Catalog().Products()))
}

// HandleSubcategory lists one subcategory with its price band. Subcategories
// without a band are not priced and so are not part of the catalog.
func (h *CatalogHandler) HandleSubcategory(w http.ResponseWriter, r *http.Request) {
	sub := chi.URLParam(r, "subcategory")

	band, ok := h.table.Lookup(sub)
	if !ok {
		response.WriteError(w, http.StatusNotFound, response.StatusNotFound, "Unknown subcategory")
		return
	}

	response.WriteSuccess(w, SubcategoryDTO{
		Subcategory: sub,
		Band:        band,
		Products:    toProductDTOs(h.source.Catalog().BySubcategory(sub)),
	})
}
