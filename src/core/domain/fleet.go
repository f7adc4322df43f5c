package domain

import "fmt"

// FleetConfig owns the wheel count shared by every car built from it.
// Changing it is an explicit call on the owner, not a write through a car.
type FleetConfig struct {
	wheels int
}

func NewFleetConfig() *FleetConfig {
	return &FleetConfig{wheels: DefaultWheels}
}

func (f *FleetConfig) Wheels() int {
	return f.wheels
}

// SetWheels changes the wheel count for every car of the fleet.
func (f *FleetConfig) SetWheels(n int) error {
	if n <= 0 {
		return NewOutOfRangeError("wheels", fmt.Sprintf("must be positive, got %d", n))
	}
	f.wheels = n
	return nil
}

// NewCar builds a car that reads its wheel count from this fleet.
func (f *FleetConfig) NewCar(brand string) Car {
	return Car{Brand: brand, fleet: f}
}

// Car reads its wheel count from the fleet that built it. A Car built
// without a fleet has DefaultWheels.
type Car struct {
	Brand string
	fleet *FleetConfig
}

func (c Car) Wheels() int {
	if c.fleet == nil {
		return DefaultWheels
	}
	return c.fleet.Wheels()
}

func (c Car) String() string {
	return fmt.Sprintf("%s has %d wheels", c.Brand, c.Wheels())
}
