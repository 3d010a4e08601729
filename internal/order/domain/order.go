package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one product on an order. StockRecordID is the record the line
// was debited from, so cancellation can credit the same record.
type Line struct {
	ID            string
	ProductID     string
	StockRecordID string
	Name          string
	Quantity      int64
	UnitPrice     decimal.Decimal
}

func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Order is the order aggregate. Totals are derived from lines and kept in
// sync by every method that touches lines.
type Order struct {
	ID             string
	CustomerID     string
	LocationID     string
	Status         Status
	Lines          []Line
	TaxRate        decimal.Decimal
	Subtotal       decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal
	IdempotencyKey string
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewOrder(id, customerID, locationID string, taxRate decimal.Decimal, lines []Line) (*Order, error) {
	if locationID == "" {
		return nil, fmt.Errorf("location is required: %w", ErrInvalidArgument)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	if taxRate.IsNegative() {
		return nil, fmt.Errorf("tax rate cannot be negative: %w", ErrInvalidArgument)
	}
	for i, l := range lines {
		if err := validateLine(l.ProductID, l.Quantity, l.UnitPrice); err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		if l.ID == "" {
			lines[i].ID = uuid.NewString()
		}
	}

	now := time.Now().UTC()
	o := &Order{
		ID:         id,
		CustomerID: customerID,
		LocationID: locationID,
		Status:     StatusPending,
		Lines:      lines,
		TaxRate:    taxRate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	o.RecalculateTotals()
	return o, nil
}

// AddItem appends a line. It does not touch stock.
func (o *Order) AddItem(productID string, quantity int64, unitPrice decimal.Decimal) (Line, error) {
	if o.Status != StatusPending {
		return Line{}, o.stateErr("add item")
	}
	if err := validateLine(productID, quantity, unitPrice); err != nil {
		return Line{}, err
	}
	l := Line{ID: uuid.NewString(), ProductID: productID, Quantity: quantity, UnitPrice: unitPrice}
	o.Lines = append(o.Lines, l)
	o.touch()
	return l, nil
}

// AppendLine adds a fully populated line, e.g. one already debited from stock.
func (o *Order) AppendLine(l Line) error {
	if o.Status != StatusPending {
		return o.stateErr("add item")
	}
	if err := validateLine(l.ProductID, l.Quantity, l.UnitPrice); err != nil {
		return err
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	o.Lines = append(o.Lines, l)
	o.touch()
	return nil
}

// UpdateItemQuantity changes a line's quantity. It does not touch stock;
// callers that need stock to follow go through the fulfillment coordinator.
func (o *Order) UpdateItemQuantity(lineID string, quantity int64) error {
	if o.Status != StatusPending {
		return o.stateErr("update item")
	}
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrInvalidArgument)
	}
	i := o.lineIndex(lineID)
	if i < 0 {
		return fmt.Errorf("line %s: %w", lineID, ErrLineNotFound)
	}
	o.Lines[i].Quantity = quantity
	o.touch()
	return nil
}

func (o *Order) Line(lineID string) (Line, bool) {
	i := o.lineIndex(lineID)
	if i < 0 {
		return Line{}, false
	}
	return o.Lines[i], true
}

func (o *Order) Complete() error { return o.transition(StatusCompleted) }

func (o *Order) Cancel() error { return o.transition(StatusCancelled) }

// RecalculateTotals derives Subtotal, Tax and Total from the lines. Tax is
// rounded to cents.
func (o *Order) RecalculateTotals() {
	subtotal := decimal.Zero
	for _, l := range o.Lines {
		subtotal = subtotal.Add(l.Total())
	}
	o.Subtotal = subtotal
	o.Tax = subtotal.Mul(o.TaxRate).Round(2)
	o.Total = o.Subtotal.Add(o.Tax)
}

// Quantities sums line quantities per stock record.
func (o *Order) Quantities() map[string]int64 {
	q := make(map[string]int64, len(o.Lines))
	for _, l := range o.Lines {
		q[l.StockRecordID] += l.Quantity
	}
	return q
}

func (o *Order) transition(next Status) error {
	if !o.Status.CanTransition(next) {
		return fmt.Errorf("order %s is %s, cannot become %s: %w", o.ID, o.Status, next, ErrInvalidState)
	}
	o.Status = next
	o.UpdatedAt = time.Now().UTC()
	return nil
}

func (o *Order) touch() {
	o.RecalculateTotals()
	o.UpdatedAt = time.Now().UTC()
}

func (o *Order) lineIndex(lineID string) int {
	for i, l := range o.Lines {
		if l.ID == lineID {
			return i
		}
	}
	return -1
}

func (o *Order) stateErr(op string) error {
	return fmt.Errorf("%s on %s order %s: %w", op, o.Status, o.ID, ErrInvalidState)
}

func validateLine(productID string, quantity int64, unitPrice decimal.Decimal) error {
	if productID == "" {
		return fmt.Errorf("product is required: %w", ErrInvalidArgument)
	}
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrInvalidArgument)
	}
	if unitPrice.IsNegative() {
		return fmt.Errorf("unit price cannot be negative: %w", ErrInvalidArgument)
	}
	return nil
}
