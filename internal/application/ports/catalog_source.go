package ports

import "github.com/yuzvak/nhh-storefront/internal/domain/catalog"

// CatalogSource hands out the current priced catalog. Implementations may swap
// the catalog at any time; callers must not hold on to it across requests.
type CatalogSource interface {
	Catalog() *catalog.Catalog
}

type ReferenceGenerator interface {
	OrderReference() string
}
