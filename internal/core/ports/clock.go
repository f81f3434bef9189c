package ports

import "time"

// Clock supplies the current time to lifecycle operations. Injecting it
// keeps creation, update and history timestamps deterministic in tests;
// production wiring uses the system clock adapter.
type Clock interface {
	Now() time.Time
}
