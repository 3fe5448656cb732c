package components

// Energy is the creature's metabolic budget. Arithmetic on it saturates;
// there is no upper cap.
type Energy struct {
	Value uint16
}

// Spend deducts cost. It reports false, leaving Value at zero, when the
// creature could not afford it.
func (e *Energy) Spend(cost uint16) bool {
	if e.Value < cost {
		e.Value = 0
		return false
	}
	e.Value -= cost
	return true
}

// Gain adds amount, saturating at the type's maximum.
func (e *Energy) Gain(amount uint16) {
	if e.Value > ^uint16(0)-amount {
		e.Value = ^uint16(0)
		return
	}
	e.Value += amount
}

// Lineage tracks when a creature was born and how many offspring it attempted.
type Lineage struct {
	Born      uint64
	Offspring uint64
}
