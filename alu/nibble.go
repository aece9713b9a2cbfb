package alu

// Nibble is a 4-bit unsigned quantity.
type Nibble uint8

// Bit is a single carry bit.
type Bit uint8

const (
	NIBBLE_BITS = 4           // Width of a nibble.
	NIBBLE_MASK = Nibble(0xf) // Mask of the nibble data bits.
	NIBBLE_SIGN = Nibble(0x8) // Two's-complement sign bit.
	NIBBLE_MAX  = Nibble(0xf) // Largest unsigned value.
	SIGNED_MIN  = -8          // Smallest signed value.
	SIGNED_MAX  = 7           // Largest signed value.
	BIT_MASK    = Bit(1)      // Mask of a carry bit.
	nibbleRange = 1 << NIBBLE_BITS
)

// Valid returns true if the nibble is in 0..15.
func (n Nibble) Valid() bool {
	return n <= NIBBLE_MAX
}

// Signed returns the two's-complement interpretation of the nibble.
func (n Nibble) Signed() int {
	n &= NIBBLE_MASK
	if n&NIBBLE_SIGN != 0 {
		return int(n) - nibbleRange
	}
	return int(n)
}

// Bit returns bit i of the nibble.
func (n Nibble) Bit(i uint) Bit {
	return Bit(n>>i) & BIT_MASK
}

// FromSigned wraps an integer into a nibble.
// FromSigned(n.Signed()) == n for every valid nibble.
func FromSigned(value int) Nibble {
	value %= nibbleRange
	if value < 0 {
		value += nibbleRange
	}
	return Nibble(value)
}

// Valid returns true if the bit is 0 or 1.
func (b Bit) Valid() bool {
	return b <= BIT_MASK
}

func bitOf(set bool) Bit {
	if set {
		return 1
	}
	return 0
}
