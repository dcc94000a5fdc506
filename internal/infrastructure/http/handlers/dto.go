package handlers

import (
	"github.com/yuzvak/nhh-storefront/internal/application/use_cases"
	"github.com/yuzvak/nhh-storefront/internal/domain/catalog"
	"github.com/yuzvak/nhh-storefront/internal/domain/checkout"
	"github.com/yuzvak/nhh-storefront/internal/domain/pricing"
)

type ProductDTO struct {
	Name        string `json:"name"`
	Subcategory string `json:"subcategory"`
	Price       string `json:"price"`
	PriceRaw    string `json:"price_raw"`
}

type CartLineDTO struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Subcategory string `json:"subcategory"`
	Qty         int    `json:"qty"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

type CartDTO struct {
	Items       []CartLineDTO `json:"items"`
	Count       int           `json:"count"`
	CountLabel  string        `json:"count_label"`
	Total       string        `json:"total"`
	TotalRaw    string        `json:"total_raw"`
	Empty       bool          `json:"empty"`
	SummaryOpen bool          `json:"summary_open"`
}

type ConfirmationDTO struct {
	Reference string `json:"reference"`
	Delivery  string `json:"delivery"`
	Total     string `json:"total"`
	Message   string `json:"message"`
}

type CheckoutDTO struct {
	Step          string                   `json:"step"`
	Delivery      string                   `json:"delivery,omitempty"`
	DeliveryLabel string                   `json:"delivery_label,omitempty"`
	DetailsTitle  string                   `json:"details_title,omitempty"`
	CanContinue   bool                     `json:"can_continue"`
	Notice        string                   `json:"notice,omitempty"`
	Details       checkout.CustomerDetails `json:"details"`
	Confirmation  *ConfirmationDTO         `json:"confirmation,omitempty"`
}

type ReviewLineDTO struct {
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	LineTotal string `json:"line_total"`
}

type ReviewDTO struct {
	Items          []ReviewLineDTO          `json:"items"`
	Delivery       string                   `json:"delivery"`
	DeliveryLabel  string                   `json:"delivery_label"`
	DeliveryCharge string                   `json:"delivery_charge"`
	Subtotal       string                   `json:"subtotal"`
	Total          string                   `json:"total"`
	Customer       checkout.CustomerDetails `json:"customer"`
	Address        []string                 `json:"address,omitempty"`
}

func toProductDTOs(products []catalog.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ProductDTO{
			Name:        p.Name,
			Subcategory: p.Subcategory,
			Price:       pricing.Format(p.Price),
			PriceRaw:    p.Price.StringFixed(2),
		})
	}
	return out
}

func toCartDTO(v use_cases.CartView) CartDTO {
	items := make([]CartLineDTO, 0, len(v.Items))
	for _, line := range v.Items {
		items = append(items, CartLineDTO{
			Index:       line.Index,
			Name:        line.Name,
			Subcategory: line.Subcategory,
			Qty:         line.Qty,
			UnitPrice:   pricing.Format(line.UnitPrice),
			LineTotal:   pricing.Format(line.LineTotal),
		})
	}

	return CartDTO{
		Items:       items,
		Count:       v.Count,
		CountLabel:  v.CountLabel,
		Total:       pricing.Format(v.Total),
		TotalRaw:    v.Total.StringFixed(2),
		Empty:       len(items) == 0,
		SummaryOpen: v.SummaryOpen,
	}
}

func toCheckoutDTO(st use_cases.CheckoutState, notice string) CheckoutDTO {
	dto := CheckoutDTO{
		Step:          string(st.Step),
		Delivery:      string(st.Delivery),
		DeliveryLabel: st.DeliveryLabel,
		DetailsTitle:  st.DetailsTitle,
		CanContinue:   st.CanContinue,
		Notice:        notice,
		Details:       st.Details,
	}
	if st.Confirmation != nil {
		dto.Confirmation = &ConfirmationDTO{
			Reference: st.Confirmation.Reference,
			Delivery:  string(st.Confirmation.Delivery),
			Total:     pricing.Format(st.Confirmation.Total),
			Message:   st.Confirmation.Message,
		}
	}
	return dto
}

func toReviewDTO(r checkout.Review) ReviewDTO {
	items := make([]ReviewLineDTO, 0, len(r.Items))
	for _, line := range r.Items {
		items = append(items, ReviewLineDTO{
			Name:      line.Name,
			Qty:       line.Qty,
			LineTotal: pricing.Format(line.LineTotal),
		})
	}

	return ReviewDTO{
		Items:          items,
		Delivery:       string(r.Delivery),
		DeliveryLabel:  r.DeliveryLabel,
		DeliveryCharge: r.ChargeDisplay,
		Subtotal:       pricing.Format(r.Subtotal),
		Total:          pricing.Format(r.Total),
		Customer:       r.Customer,
		Address:        r.Address,
	}
}
