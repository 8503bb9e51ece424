package domain

import "time"

// PaymentMethod tells a client how to pay. At most one method in the registry is the default.
type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Details     string `json:"details"`
	IsDefault   bool   `json:"isDefault"`
	Timestamps
}

// IndexOfPaymentMethod returns the position of id in methods, or -1.
func IndexOfPaymentMethod(methods []PaymentMethod, id string) int {
	for i := range methods {
		if methods[i].ID == id {
			return i
		}
	}
	return -1
}

// ClearDefaults unsets IsDefault on every method except the one with exceptID.
func ClearDefaults(methods []PaymentMethod, exceptID string) {
	for i := range methods {
		if methods[i].ID != exceptID {
			methods[i].IsDefault = false
		}
	}
}

// CountDefaults returns how many methods are flagged as default.
func CountDefaults(methods []PaymentMethod) int {
	n := 0
	for _, m := range methods {
		if m.IsDefault {
			n++
		}
	}
	return n
}

// DefaultPaymentMethod returns the flagged method, if any.
func DefaultPaymentMethod(methods []PaymentMethod) (PaymentMethod, bool) {
	for _, m := range methods {
		if m.IsDefault {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

// EnsureSingleDefault restores the registry invariant: a non-empty registry has exactly
// one default. Extra defaults after the first are cleared; if none is flagged the
// first method is promoted.
func EnsureSingleDefault(methods []PaymentMethod) {
	if len(methods) == 0 {
		return
	}
	seen := false
	for i := range methods {
		if methods[i].IsDefault {
			if seen {
				methods[i].IsDefault = false
			}
			seen = true
		}
	}
	if !seen {
		methods[0].IsDefault = true
	}
}

// RemovePaymentMethod deletes id from methods. If the removed method was the default
// and others remain, the first survivor becomes the default.
func RemovePaymentMethod(methods []PaymentMethod, id string) ([]PaymentMethod, bool) {
	idx := IndexOfPaymentMethod(methods, id)
	if idx < 0 {
		return methods, false
	}
	wasDefault := methods[idx].IsDefault
	out := make([]PaymentMethod, 0, len(methods)-1)
	out = append(out, methods[:idx]...)
	out = append(out, methods[idx+1:]...)
	if wasDefault && len(out) > 0 {
		out[0].IsDefault = true
	}
	return out, true
}

// SeedPaymentMethods returns the methods a fresh installation starts with.
func SeedPaymentMethods(now time.Time, newID func() string) []PaymentMethod {
	ts := Timestamps{CreatedAt: now, UpdatedAt: now}
	return []PaymentMethod{
		{
			ID:          newID(),
			Name:        "Bank Transfer",
			Description: "Please transfer the invoice amount to our bank account.",
			Details:     "Bank: Example Bank\nAccount Name: Your Company\nAccount Number: 123456789\nRouting/Sort Code: 987654321",
			IsDefault:   true,
			Timestamps:  ts,
		},
		{
			ID:          newID(),
			Name:        "PayPal",
			Description: "Please send payment via PayPal.",
			Details:     "PayPal Email: payments@yourcompany.com",
			IsDefault:   false,
			Timestamps:  ts,
		},
	}
}
