package session

// Page is a storefront view
type Page string

const (
	PageHome    Page = "home"
	PageCatalog Page = "catalog"
	PageDetail  Page = "detail"
	PageAdmin   Page = "admin"
	PageLogin   Page = "login"
	PageCart    Page = "cart"
)

// CatalogAnchor is where the home view scrolls for the catalog page
const CatalogAnchor = "catalog-section"

func (p Page) IsValid() bool {
	switch p {
	case PageHome, PageCatalog, PageDetail, PageAdmin, PageLogin, PageCart:
		return true
	}
	return false
}
