package widget

import (
	"fmt"
	"math"
	"sync/atomic"
)

// ID names one widget node for its whole lifetime. The zero ID is never
// handed out and means "no widget".
type ID uint64

var idCounter atomic.Uint64

// NextID returns a new, process-unique identifier. IDs are never reused.
func NextID() ID {
	return ID(idCounter.Add(1))
}

// Reserved returns a fixed identifier counted down from the top of the ID
// space. The counter behind NextID never reaches that range, which makes
// reserved IDs safe for golden snapshots and tests.
func Reserved(n uint16) ID {
	return ID(math.MaxUint64 - uint64(n))
}

// IDFromRaw converts a raw arena key back to an ID.
func IDFromRaw(raw uint64) ID {
	return ID(raw)
}

// ToRaw returns the key used by the underlying tree arenas.
func (id ID) ToRaw() uint64 {
	return uint64(id)
}

// IsZero reports whether id is the zero ID.
func (id ID) IsZero() bool {
	return id == 0
}

func (id ID) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}
