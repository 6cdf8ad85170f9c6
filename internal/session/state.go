package session

import (
	bookModel "lumina-storefront/internal/domains/book/model"
	cartModel "lumina-storefront/internal/domains/cart/model"
	orderModel "lumina-storefront/internal/domains/order/model"
	reviewModel "lumina-storefront/internal/domains/review/model"
	settingsModel "lumina-storefront/internal/domains/settings/model"
)

// State is everything a storefront session renders from.
// Reducers below return a new State and never modify their input.
type State struct {
	Page           Page                    `json:"page"`
	SelectedBookID string                  `json:"selected_book_id,omitempty"`
	Anchor         string                  `json:"anchor,omitempty"`
	Authenticated  bool                    `json:"authenticated"`
	Books          []bookModel.Book        `json:"books"`
	Settings       *settingsModel.Settings `json:"settings"`
	Orders         []orderModel.Order      `json:"orders,omitempty"`
	Reviews        []reviewModel.Review    `json:"reviews"`
	Cart           []cartModel.CartItem    `json:"cart"`
}

// Public drops what only the admin may see
func (s State) Public() State {
	if !s.Authenticated {
		s.Orders = nil
	}
	return s
}

// SetOrders and SetReviews copy the lists so later edits by the caller
// do not leak into the state
func SetOrders(s State, orders []orderModel.Order) State {
	s.Orders = append([]orderModel.Order{}, orders...)
	return s
}

func SetReviews(s State, reviews []reviewModel.Review) State {
	s.Reviews = append([]reviewModel.Review{}, reviews...)
	return s
}

// Navigate moves to page. A detail page for an unknown book lands on home,
// the admin page without a session lands on login and the catalog page is
// the home page scrolled to the catalog.
func Navigate(s State, page Page, bookID string) State {
	s.Anchor = ""
	s.SelectedBookID = ""

	switch page {
	case PageCatalog:
		s.Page = PageHome
		s.Anchor = CatalogAnchor
	case PageDetail:
		if hasBook(s.Books, bookID) {
			s.Page = PageDetail
			s.SelectedBookID = bookID
		} else {
			s.Page = PageHome
		}
	case PageAdmin:
		if s.Authenticated {
			s.Page = PageAdmin
		} else {
			s.Page = PageLogin
		}
	case PageHome, PageLogin, PageCart:
		s.Page = page
	default:
		s.Page = PageHome
	}
	return s
}

func hasBook(books []bookModel.Book, id string) bool {
	if id == "" {
		return false
	}
	for _, b := range books {
		if b.ID == id {
			return true
		}
	}
	return false
}
