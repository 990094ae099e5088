package cpu

// 6502 spellings of the machine instructions.

func (m *Machine[T]) Lda(v T) { m.Load(REG_A, v) }
func (m *Machine[T]) Ldx(v T) { m.Load(REG_X, v) }
func (m *Machine[T]) Ldy(v T) { m.Load(REG_Y, v) }

func (m *Machine[T]) Sta() T { return m.Store(REG_A) }
func (m *Machine[T]) Stx() T { return m.Store(REG_X) }
func (m *Machine[T]) Sty() T { return m.Store(REG_Y) }

func (m *Machine[T]) Tax() { m.Transfer(REG_A, REG_X) }
func (m *Machine[T]) Tay() { m.Transfer(REG_A, REG_Y) }
func (m *Machine[T]) Txa() { m.Transfer(REG_X, REG_A) }
func (m *Machine[T]) Tya() { m.Transfer(REG_Y, REG_A) }

func (m *Machine[T]) Inx() { m.Increment(REG_X) }
func (m *Machine[T]) Iny() { m.Increment(REG_Y) }
func (m *Machine[T]) Dex() { m.Decrement(REG_X) }
func (m *Machine[T]) Dey() { m.Decrement(REG_Y) }

func (m *Machine[T]) Cmp(v T) { m.Compare(REG_A, v) }
func (m *Machine[T]) Cpx(v T) { m.Compare(REG_X, v) }
func (m *Machine[T]) Cpy(v T) { m.Compare(REG_Y, v) }

func (m *Machine[T]) Adc(v T) error { return m.AddWithCarry(v) }

func (m *Machine[T]) Pha() error { return m.Push(REG_A) }
func (m *Machine[T]) Pla() error { return m.Pop(REG_A) }

// Branch predicates.

func (m *Machine[T]) Eq() bool { return m.IsZero() }
func (m *Machine[T]) Ne() bool { return m.IsNonZero() }
func (m *Machine[T]) Mi() bool { return m.IsNegative() }
func (m *Machine[T]) Pl() bool { return m.IsNonNegative() }
func (m *Machine[T]) Cs() bool { return m.IsCarrySet() }
func (m *Machine[T]) Cc() bool { return m.IsCarryClear() }
func (m *Machine[T]) Vs() bool { return m.IsOverflowSet() }
func (m *Machine[T]) Vc() bool { return m.IsOverflowClear() }
