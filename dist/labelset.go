package dist

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaskWidth is the number of distinct labels a LabelSet can address.
// It is fixed by the underlying uint32; supporting wider label alphabets
// means widening the type, not relaxing a check.
const MaskWidth = 32

// LabelSet is a fixed-capacity set of label ids backed by a 32-bit mask,
// used to record which labels a neighborhood is deficient in. It has value
// semantics: mutating operations return a new set, so sets can be stored
// in visit records and updated without aliasing surprises.
type LabelSet uint32

// Has reports whether label i is in the set. Labels outside [0,MaskWidth)
// are never members.
func (s LabelSet) Has(i int) bool {
	return i >= 0 && i < MaskWidth && s&(1<<uint(i)) != 0
}

// Add returns s with label i included. Out-of-range labels leave s as is.
func (s LabelSet) Add(i int) LabelSet {
	if i < 0 || i >= MaskWidth {
		return s
	}
	return s | 1<<uint(i)
}

// Clear returns s with label i removed. Out-of-range labels leave s as is.
func (s LabelSet) Clear(i int) LabelSet {
	if i < 0 || i >= MaskWidth {
		return s
	}
	return s &^ (1 << uint(i))
}

// Lowest returns the smallest label in the set, or -1 when the set is
// empty. Combined with Clear it drives the "take lowest, resolve, drop it"
// iteration the greedy strategy uses.
func (s LabelSet) Lowest() int {
	if s == 0 {
		return -1
	}
	return bits.TrailingZeros32(uint32(s))
}

// Count returns the number of labels in the set.
func (s LabelSet) Count() int { return bits.OnesCount32(uint32(s)) }

// Empty reports whether the set contains no labels.
func (s LabelSet) Empty() bool { return s == 0 }

// String renders the set as "{1,4,7}" for logs and test failures.
func (s LabelSet) String() string {
	if s == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for rest := s; !rest.Empty(); {
		i := rest.Lowest()
		rest = rest.Clear(i)
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(i))
		first = false
	}
	b.WriteByte('}')
	return b.String()
}
