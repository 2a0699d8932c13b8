package emissions

import (
	"maps"

	"github.com/shopspring/decimal"
)

// Emission factors in kg CO2e per unit of activity.
const (
	GasolinePerLitre = 2.31
	DieselPerLitre   = 2.68
	ElectricPerLitre = 0.0

	BusPerPassengerKm      = 0.05
	TrainPerPassengerKm    = 0.03
	AirplanePerPassengerKm = 0.25

	// BicyclePerLitre applies to the fuel-based "Motorcycle" option.
	BicyclePerLitre = 0.0

	CoalPerKWh       = 0.937
	NaturalGasPerKWh = 0.450
	RenewablePerKWh  = 0.0

	CementPerTonne = 0.8
	SteelPerTonne  = 1.8

	WastePerKg = 0.10
)

// TransportFactors holds the transportation coefficients.
type TransportFactors struct {
	// Fuel is kg CO2e per litre burned by a car.
	Fuel map[FuelType]float64 `json:"fuel" yaml:"fuel"`
	// PassengerKm is kg CO2e per passenger-kilometre for shared modes.
	PassengerKm map[VehicleType]float64 `json:"passenger_km" yaml:"passenger_km"`
	// VehicleFuel is kg CO2e per litre for vehicles without a fuel choice.
	VehicleFuel map[VehicleType]float64 `json:"vehicle_fuel" yaml:"vehicle_fuel"`
}

// FactorTable is the complete set of emission factors, one typed
// structure per sector. Waste has a single scalar coefficient.
type FactorTable struct {
	Transportation TransportFactors         `json:"transportation" yaml:"transportation"`
	Energy         map[EnergySource]float64 `json:"energy"         yaml:"energy"`
	Industrial     map[IndustryType]float64 `json:"industrial"     yaml:"industrial"`
	WastePerKg     float64                  `json:"waste"          yaml:"waste"`
}

// DefaultFactors returns a fresh copy of the built-in factor table.
func DefaultFactors() FactorTable {
	return FactorTable{
		Transportation: TransportFactors{
			Fuel: map[FuelType]float64{
				FuelGasoline: GasolinePerLitre,
				FuelDiesel:   DieselPerLitre,
				FuelElectric: ElectricPerLitre,
			},
			PassengerKm: map[VehicleType]float64{
				VehicleBus:      BusPerPassengerKm,
				VehicleTrain:    TrainPerPassengerKm,
				VehicleAirplane: AirplanePerPassengerKm,
			},
			VehicleFuel: map[VehicleType]float64{
				VehicleBicycle: BicyclePerLitre,
			},
		},
		Energy: map[EnergySource]float64{
			EnergyCoal:       CoalPerKWh,
			EnergyNaturalGas: NaturalGasPerKWh,
			EnergyRenewable:  RenewablePerKWh,
		},
		Industrial: map[IndustryType]float64{
			IndustryCement: CementPerTonne,
			IndustrySteel:  SteelPerTonne,
		},
		WastePerKg: WastePerKg,
	}
}

// Clone returns a deep copy of the table.
func (f FactorTable) Clone() FactorTable {
	return FactorTable{
		Transportation: TransportFactors{
			Fuel:        maps.Clone(f.Transportation.Fuel),
			PassengerKm: maps.Clone(f.Transportation.PassengerKm),
			VehicleFuel: maps.Clone(f.Transportation.VehicleFuel),
		},
		Energy:     maps.Clone(f.Energy),
		Industrial: maps.Clone(f.Industrial),
		WastePerKg: f.WastePerKg,
	}
}

func lookup[K ~string](m map[K]float64, field string, key K) (decimal.Decimal, error) {
	v, ok := m[key]
	if !ok {
		return decimal.Zero, unknownFactor(field, string(key))
	}
	return decimal.NewFromFloat(v), nil
}

func (t TransportFactors) fuel(f FuelType) (decimal.Decimal, error) {
	return lookup(t.Fuel, FieldFuelType, f)
}

func (t TransportFactors) passengerKm(v VehicleType) (decimal.Decimal, error) {
	return lookup(t.PassengerKm, FieldVehicleType, v)
}

func (t TransportFactors) vehicleFuel(v VehicleType) (decimal.Decimal, error) {
	return lookup(t.VehicleFuel, FieldVehicleType, v)
}

func (f FactorTable) energy(s EnergySource) (decimal.Decimal, error) {
	return lookup(f.Energy, FieldElectricitySource, s)
}

func (f FactorTable) industrial(i IndustryType) (decimal.Decimal, error) {
	return lookup(f.Industrial, FieldIndustryType, i)
}

func (f FactorTable) waste() decimal.Decimal {
	return decimal.NewFromFloat(f.WastePerKg)
}

// FactorRow is one flattened entry of the table, used for listings.
type FactorRow struct {
	Sector  Sector  `json:"sector"`
	Subtype string  `json:"subtype"`
	Unit    string  `json:"unit"`
	KgCO2e  float64 `json:"kg_co2e"`
}

// Rows flattens the table in display order.
func (f FactorTable) Rows() []FactorRow {
	var rows []FactorRow
	for _, fuel := range FuelTypes() {
		if v, ok := f.Transportation.Fuel[fuel]; ok {
			rows = append(rows, FactorRow{SectorTransportation, string(fuel), "litre", v})
		}
	}
	for _, vehicle := range VehicleTypes() {
		if v, ok := f.Transportation.PassengerKm[vehicle]; ok {
			rows = append(rows, FactorRow{SectorTransportation, string(vehicle), "passenger-km", v})
		}
		if v, ok := f.Transportation.VehicleFuel[vehicle]; ok {
			rows = append(rows, FactorRow{SectorTransportation, string(vehicle), "litre", v})
		}
	}
	for _, src := range EnergySources() {
		if v, ok := f.Energy[src]; ok {
			rows = append(rows, FactorRow{SectorEnergy, string(src), "kWh", v})
		}
	}
	for _, ind := range IndustryTypes() {
		if v, ok := f.Industrial[ind]; ok {
			rows = append(rows, FactorRow{SectorIndustrial, string(ind), "tonne", v})
		}
	}
	rows = append(rows, FactorRow{SectorWaste, "", "kg", f.WastePerKg})
	return rows
}
