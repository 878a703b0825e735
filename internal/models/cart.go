package models

import "github.com/shopspring/decimal"

// CartLine mirrors one backend cart record. Its ID is assigned by the backend and is only ever
// replaced, never edited, by the storefront.
type CartLine struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type CartState struct {
	Lines  []CartLine `json:"lines"`
	IsOpen bool       `json:"is_open"`
}

func (s CartState) TotalItems() int {
	total := 0
	for _, line := range s.Lines {
		total += line.Quantity
	}

	return total
}

func (s CartState) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Lines {
		total = total.Add(line.Subtotal())
	}

	return total
}

// Line returns the line with the given backend id.
func (s CartState) Line(id int64) (CartLine, bool) {
	for _, line := range s.Lines {
		if line.ID == id {
			return line, true
		}
	}

	return CartLine{}, false
}

// View snapshots the state together with its derived totals.
func (s CartState) View() *CartView {
	lines := make([]CartLine, len(s.Lines))
	copy(lines, s.Lines)

	return &CartView{
		Lines:      lines,
		IsOpen:     s.IsOpen,
		TotalItems: s.TotalItems(),
		TotalPrice: s.TotalPrice(),
	}
}

type CartView struct {
	Lines      []CartLine      `json:"lines"`
	IsOpen     bool            `json:"is_open"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"omitempty,min=1,max=999"`
}

// Quantity zero or below removes the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
