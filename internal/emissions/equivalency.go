package emissions

import (
	"fmt"
	"math"
)

// EPA greenhouse gas equivalency divisors (2024 edition), kg CO2e per unit.
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per full smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed per tree seedling over 10 years.
	EPATreeSeedlingFactor = 60.0

	// MinEquivalencyThresholdKg is the smallest result that gets equivalencies.
	MinEquivalencyThresholdKg = 1.0
)

// EquivalencyKind is a category of relatable comparison.
type EquivalencyKind int

const (
	EquivalencyMilesDriven EquivalencyKind = iota
	EquivalencySmartphonesCharged
	EquivalencyTreeSeedlings
)

// String returns a stable identifier for the kind.
func (k EquivalencyKind) String() string {
	switch k {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	default:
		return fmt.Sprintf("EquivalencyKind(%d)", k)
	}
}

// Equivalency is one computed comparison.
type Equivalency struct {
	Kind  EquivalencyKind `json:"kind"`
	Value float64         `json:"value"`
}

// Equivalencies converts the result's emissions into miles driven,
// smartphones charged and tree seedlings needed. It returns nil below
// MinEquivalencyThresholdKg, where the comparisons stop being meaningful.
func (r Result) Equivalencies() []Equivalency {
	kg := r.EmissionsKg()
	if kg < MinEquivalencyThresholdKg || math.IsInf(kg, 0) || math.IsNaN(kg) {
		return nil
	}
	return []Equivalency{
		{Kind: EquivalencyMilesDriven, Value: kg / EPAMilesDrivenFactor},
		{Kind: EquivalencySmartphonesCharged, Value: kg / EPASmartphoneChargeFactor},
		{Kind: EquivalencyTreeSeedlings, Value: kg / EPATreeSeedlingFactor},
	}
}
