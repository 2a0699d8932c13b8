// Package emissions computes carbon emissions and carbon credits for a
// single activity in one of four sectors: transportation, energy,
// industrial and waste.
//
// Inputs arrive as the strings a user typed. They are parsed into a typed
// Activity, multiplied by the static emission factors, and returned as a
// Result whose Credits are always Emissions / 1000 (one credit per tonne).
package emissions

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Sector identifies an emissions sector.
type Sector string

const (
	SectorTransportation Sector = "transportation"
	SectorEnergy         Sector = "energy"
	SectorIndustrial     Sector = "industrial"
	SectorWaste          Sector = "waste"
)

// Sectors returns every supported sector in display order.
func Sectors() []Sector {
	return []Sector{SectorTransportation, SectorEnergy, SectorIndustrial, SectorWaste}
}

// Valid reports whether s is a supported sector.
func (s Sector) Valid() bool {
	switch s {
	case SectorTransportation, SectorEnergy, SectorIndustrial, SectorWaste:
		return true
	default:
		return false
	}
}

// VehicleType is the transport mode for the transportation sector.
type VehicleType string

const (
	VehicleCar      VehicleType = "car"
	VehicleAirplane VehicleType = "airplane"
	VehicleBus      VehicleType = "bus"
	VehicleTrain    VehicleType = "train"
	// VehicleBicycle is labelled "Motorcycle" in the UI and is fuel-based.
	VehicleBicycle VehicleType = "bicycle"
)

// VehicleTypes returns the selectable vehicle types in display order.
func VehicleTypes() []VehicleType {
	return []VehicleType{VehicleCar, VehicleAirplane, VehicleBus, VehicleTrain, VehicleBicycle}
}

// FuelType is the fuel burned by a car.
type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
)

// FuelTypes returns the selectable fuel types in display order.
func FuelTypes() []FuelType {
	return []FuelType{FuelGasoline, FuelDiesel, FuelElectric}
}

// EnergySource is the origin of consumed electricity.
type EnergySource string

const (
	EnergyCoal       EnergySource = "coal"
	EnergyNaturalGas EnergySource = "naturalGas"
	EnergyRenewable  EnergySource = "renewable"
)

// EnergySources returns the selectable energy sources in display order.
func EnergySources() []EnergySource {
	return []EnergySource{EnergyCoal, EnergyNaturalGas, EnergyRenewable}
}

// IndustryType is the product of an industrial process.
type IndustryType string

const (
	IndustryCement IndustryType = "cement"
	IndustrySteel  IndustryType = "steel"
)

// IndustryTypes returns the selectable industry types in display order.
func IndustryTypes() []IndustryType {
	return []IndustryType{IndustryCement, IndustrySteel}
}

// Field names as used in CalculationInput JSON/YAML and in error messages.
const (
	FieldSector            = "sector"
	FieldVehicleType       = "vehicleType"
	FieldFuelType          = "fuelType"
	FieldFuelConsumption   = "fuelConsumption"
	FieldDistance          = "distance"
	FieldTrips             = "trips"
	FieldPassengers        = "passengers"
	FieldElectricitySource = "electricitySource"
	FieldEnergyAmount      = "energyAmount"
	FieldIndustryType      = "industryType"
	FieldIndustrialAmount  = "industrialAmount"
	FieldWasteAmount       = "wasteAmount"
)

// CalculationInput holds the fields exactly as entered by a user.
// Only the fields relevant to the chosen sector are read.
type CalculationInput struct {
	Sector            string `json:"sector"            yaml:"sector"`
	VehicleType       string `json:"vehicleType"       yaml:"vehicleType"`
	FuelType          string `json:"fuelType"          yaml:"fuelType"`
	FuelConsumption   string `json:"fuelConsumption"   yaml:"fuelConsumption"`
	Distance          string `json:"distance"          yaml:"distance"`
	Trips             string `json:"trips"             yaml:"trips"`
	Passengers        string `json:"passengers"        yaml:"passengers"`
	ElectricitySource string `json:"electricitySource" yaml:"electricitySource"`
	EnergyAmount      string `json:"energyAmount"      yaml:"energyAmount"`
	IndustryType      string `json:"industryType"      yaml:"industryType"`
	IndustrialAmount  string `json:"industrialAmount"  yaml:"industrialAmount"`
	WasteAmount       string `json:"wasteAmount"       yaml:"wasteAmount"`
}

// InputField is one named field of a CalculationInput.
type InputField struct {
	Name  string
	Value string
}

// Fields returns all input fields in form order, including empty ones.
func (in CalculationInput) Fields() []InputField {
	return []InputField{
		{FieldSector, in.Sector},
		{FieldVehicleType, in.VehicleType},
		{FieldFuelType, in.FuelType},
		{FieldFuelConsumption, in.FuelConsumption},
		{FieldDistance, in.Distance},
		{FieldTrips, in.Trips},
		{FieldPassengers, in.Passengers},
		{FieldElectricitySource, in.ElectricitySource},
		{FieldEnergyAmount, in.EnergyAmount},
		{FieldIndustryType, in.IndustryType},
		{FieldIndustrialAmount, in.IndustrialAmount},
		{FieldWasteAmount, in.WasteAmount},
	}
}

// Set assigns the named field. It reports false for unknown names.
func (in *CalculationInput) Set(name, value string) bool {
	switch name {
	case FieldSector:
		in.Sector = value
	case FieldVehicleType:
		in.VehicleType = value
	case FieldFuelType:
		in.FuelType = value
	case FieldFuelConsumption:
		in.FuelConsumption = value
	case FieldDistance:
		in.Distance = value
	case FieldTrips:
		in.Trips = value
	case FieldPassengers:
		in.Passengers = value
	case FieldElectricitySource:
		in.ElectricitySource = value
	case FieldEnergyAmount:
		in.EnergyAmount = value
	case FieldIndustryType:
		in.IndustryType = value
	case FieldIndustrialAmount:
		in.IndustrialAmount = value
	case FieldWasteAmount:
		in.WasteAmount = value
	default:
		return false
	}
	return true
}

// kgPerCreditExp is the power of ten of kilograms in one credit (one tonne).
const kgPerCreditExp = 3

// Result is the outcome of one calculation. It is never persisted.
type Result struct {
	Sector       Sector
	Emissions    decimal.Decimal // kg CO2e
	Credits      decimal.Decimal // tonnes CO2e, always Emissions / 1000
	CalculatedAt time.Time
}

// NewResult builds a Result, deriving Credits from emissions.
func NewResult(sector Sector, emissions decimal.Decimal, at time.Time) Result {
	return Result{
		Sector:       sector,
		Emissions:    emissions,
		Credits:      emissions.Shift(-kgPerCreditExp),
		CalculatedAt: at,
	}
}

// EmissionsKg returns the emissions as a float for display and charts.
func (r Result) EmissionsKg() float64 {
	return r.Emissions.InexactFloat64()
}

// CreditsTonnes returns the exact (untruncated) credits as a float.
func (r Result) CreditsTonnes() float64 {
	return r.Credits.InexactFloat64()
}

// WholeCredits returns the credits truncated toward zero. Fractional
// credits cannot be purchased. The value is exact at any magnitude.
func (r Result) WholeCredits() decimal.Decimal {
	return r.Credits.Truncate(0)
}

// EnoughForCredit reports whether at least one whole credit was emitted.
func (r Result) EnoughForCredit() bool {
	return r.Credits.GreaterThanOrEqual(decimal.NewFromInt(1))
}

type resultJSON struct {
	Sector       Sector      `json:"sector"`
	EmissionsKg  float64     `json:"emissions_kg"`
	Credits      float64     `json:"credits"`
	WholeCredits json.Number `json:"whole_credits"`
	CalculatedAt time.Time   `json:"calculated_at"`
}

// MarshalJSON encodes the result with float values and the truncated credit count.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Sector:       r.Sector,
		EmissionsKg:  r.EmissionsKg(),
		Credits:      r.CreditsTonnes(),
		WholeCredits: json.Number(r.WholeCredits().String()),
		CalculatedAt: r.CalculatedAt,
	})
}
