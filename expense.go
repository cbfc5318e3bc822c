package travel

// DefaultExpenseCategory is the category given to new expenses.
const DefaultExpenseCategory = "Dining"

// Expense is one monetary transaction of a day.
//
// Amount is kept as typed: it may be empty or malformed, in which case it
// counts as zero in totals.
type Expense struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Name     string   `json:"name"`
	Amount   string   `json:"amount"`
	Currency Currency `json:"currency"`
}

// NewExpense returns an empty dining expense in the base currency.
func NewExpense(id string) Expense {
	return Expense{ID: id, Category: DefaultExpenseCategory, Currency: Base}
}

// ExpenseEdit is a partial update of an expense. Nil fields are left unchanged.
type ExpenseEdit struct {
	Category *string
	Name     *string
	Amount   *string
	Currency *string `validate:"omitempty,oneof=TWD JPY KRW EUR"`
}

// Apply validates the edit and applies it to e. Nothing is changed on error.
// The amount is free text and is never rejected.
func (x ExpenseEdit) Apply(e *Expense) error {
	if x.Currency != nil {
		upper, err := ParseCurrency(*x.Currency)
		if err != nil {
			return err
		}
		s := string(upper)
		x.Currency = &s
	}
	if err := validate.Struct(x); err != nil {
		return validationError(err)
	}
	if x.Category != nil {
		e.Category = *x.Category
	}
	if x.Name != nil {
		e.Name = *x.Name
	}
	if x.Amount != nil {
		e.Amount = *x.Amount
	}
	if x.Currency != nil {
		e.Currency = Currency(*x.Currency)
	}
	return nil
}
