package cpu

// BusDriver identifies the unit driving the shared 8-bit bus.
type BusDriver int

//go:generate go tool stringer -linecomment -type=BusDriver
const (
	DriverNone      = BusDriver(0) // none
	DriverInterrupt = BusDriver(1) // int
	DriverCpu       = BusDriver(2) // cpu
	DriverMemory    = BusDriver(3) // mem
	DriverIo        = BusDriver(4) // io
)

// busClaim is one unit's request to drive the bus this half-cycle.
type busClaim struct {
	driver BusDriver
	value  uint8
}

// arbitrate selects exactly one bus driver from the claims, in the
// fixed structural priority: interrupt injection, then CPU, then
// memory, then I/O. There is no runtime lock; ownership is decided by
// this function alone, from the current state and cycle type.
func arbitrate(claims ...busClaim) (driver BusDriver, value uint8) {
	order := [...]BusDriver{DriverInterrupt, DriverCpu, DriverMemory, DriverIo}

	for _, want := range order {
		for _, claim := range claims {
			if claim.driver == want {
				return claim.driver, claim.value
			}
		}
	}

	return DriverNone, 0
}
