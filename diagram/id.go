package diagram

import (
	"fmt"
	"sync/atomic"
)

// idCounter is a process-wide monotonic source, mirroring the teacher's
// I2C/hardware singletons being process-global: one counter, never reset.
var idCounter atomic.Uint64

func init() {
	idCounter.Store(1)
}

// Id names an element or a relay client within this process only. It is
// never part of the wire format — each peer renumbers on receive.
type Id uint64

// NewId returns a fresh, process-unique Id. Safe for concurrent use.
func NewId() Id {
	return Id(idCounter.Add(1))
}

func (id Id) String() string {
	return fmt.Sprintf("%d", uint64(id))
}
