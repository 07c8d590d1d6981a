package domain

// CustomerDescriptor is implemented by application types that describe the payer.
type CustomerDescriptor interface {
	// CustomerID is zero when the payer is anonymous.
	CustomerID() int
	CustomerName() string
	CustomerEmail() string
	CustomerPhone() string
}

// Customer is the stock CustomerDescriptor.
type Customer struct {
	ID    int    `validate:"min=0"`
	Name  string `validate:"omitempty"`
	Email string `validate:"omitempty,email"`
	Phone string `validate:"omitempty"`
}

func (c *Customer) CustomerID() int { return c.ID }
func (c *Customer) CustomerName() string { return c.Name }
func (c *Customer) CustomerEmail() string { return c.Email }
func (c *Customer) CustomerPhone() string { return c.Phone }

// ValidateCustomer checks the descriptor fields the processor cares about.
func ValidateCustomer(d CustomerDescriptor) error {
	if isNil(d) {
		return NewInvalidCustomerError(nil)
	}
	snap := Customer{
		ID:    d.CustomerID(),
		Name:  d.CustomerName(),
		Email: d.CustomerEmail(),
		Phone: d.CustomerPhone(),
	}
	if err := validate.Struct(snap); err != nil {
		return NewInvalidCustomerError(err)
	}
	return nil
}
