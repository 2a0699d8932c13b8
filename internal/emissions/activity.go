package emissions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Activity is a parsed, typed description of what was emitted. Each sector
// has its own concrete type.
type Activity interface {
	Sector() Sector
	// Emissions returns kg CO2e for the activity under the given factors.
	Emissions(f FactorTable) (decimal.Decimal, error)
}

// TransportActivity covers trips by a single vehicle type.
// Shared modes (bus, train, airplane) use distance and passengers; fuel-based
// modes (car, bicycle) use litres of fuel.
type TransportActivity struct {
	Vehicle    VehicleType
	Fuel       FuelType
	FuelLitres decimal.Decimal
	DistanceKm decimal.Decimal
	Trips      decimal.Decimal
	Passengers decimal.Decimal
}

// Sector implements Activity.
func (TransportActivity) Sector() Sector { return SectorTransportation }

// Emissions implements Activity.
func (a TransportActivity) Emissions(f FactorTable) (decimal.Decimal, error) {
	switch a.Vehicle {
	case VehicleBus, VehicleTrain, VehicleAirplane:
		factor, err := f.Transportation.passengerKm(a.Vehicle)
		if err != nil {
			return decimal.Zero, err
		}
		return factor.Mul(a.DistanceKm).Mul(a.Trips).Mul(a.Passengers), nil
	case VehicleCar:
		factor, err := f.Transportation.fuel(a.Fuel)
		if err != nil {
			return decimal.Zero, err
		}
		return factor.Mul(a.FuelLitres).Mul(a.Trips), nil
	case VehicleBicycle:
		factor, err := f.Transportation.vehicleFuel(a.Vehicle)
		if err != nil {
			return decimal.Zero, err
		}
		return factor.Mul(a.FuelLitres).Mul(a.Trips), nil
	default:
		return decimal.Zero, unknownFactor(FieldVehicleType, string(a.Vehicle))
	}
}

// EnergyActivity is electricity consumed from one source.
type EnergyActivity struct {
	Source EnergySource
	KWh    decimal.Decimal
}

// Sector implements Activity.
func (EnergyActivity) Sector() Sector { return SectorEnergy }

// Emissions implements Activity.
func (a EnergyActivity) Emissions(f FactorTable) (decimal.Decimal, error) {
	factor, err := f.energy(a.Source)
	if err != nil {
		return decimal.Zero, err
	}
	return factor.Mul(a.KWh), nil
}

// IndustrialActivity is an amount of industrial output.
type IndustrialActivity struct {
	Industry IndustryType
	Tonnes   decimal.Decimal
}

// Sector implements Activity.
func (IndustrialActivity) Sector() Sector { return SectorIndustrial }

// Emissions implements Activity.
func (a IndustrialActivity) Emissions(f FactorTable) (decimal.Decimal, error) {
	factor, err := f.industrial(a.Industry)
	if err != nil {
		return decimal.Zero, err
	}
	return factor.Mul(a.Tonnes), nil
}

// WasteActivity is an amount of waste produced.
type WasteActivity struct {
	Kg decimal.Decimal
}

// Sector implements Activity.
func (WasteActivity) Sector() Sector { return SectorWaste }

// Emissions implements Activity.
func (a WasteActivity) Emissions(f FactorTable) (decimal.Decimal, error) {
	return a.Kg.Mul(f.waste()), nil
}

// ParseActivity validates the fields required by the chosen sector and
// returns the matching Activity. Fields belonging to other sectors are
// ignored. All field problems are reported together via errors.Join; each
// one is a *FieldError.
func ParseActivity(in CalculationInput) (Activity, error) {
	sector := Sector(strings.TrimSpace(in.Sector))
	switch sector {
	case SectorTransportation:
		return parseTransport(in)
	case SectorEnergy:
		p := &fieldParser{}
		a := EnergyActivity{
			Source: EnergySource(p.choice(FieldElectricitySource, in.ElectricitySource)),
			KWh:    p.quantity(FieldEnergyAmount, in.EnergyAmount),
		}
		return p.result(a)
	case SectorIndustrial:
		p := &fieldParser{}
		a := IndustrialActivity{
			Industry: IndustryType(p.choice(FieldIndustryType, in.IndustryType)),
			Tonnes:   p.quantity(FieldIndustrialAmount, in.IndustrialAmount),
		}
		return p.result(a)
	case SectorWaste:
		p := &fieldParser{}
		a := WasteActivity{Kg: p.quantity(FieldWasteAmount, in.WasteAmount)}
		return p.result(a)
	case "":
		return nil, fmt.Errorf("%w: no sector selected", ErrInvalidSector)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSector, in.Sector)
	}
}

// RequiredFields lists the fields ParseActivity reads for the input's
// sector (and vehicle type), in form order, starting with the sector.
func RequiredFields(in CalculationInput) []string {
	fields := []string{FieldSector}
	switch Sector(strings.TrimSpace(in.Sector)) {
	case SectorTransportation:
		fields = append(fields, FieldVehicleType)
		switch VehicleType(strings.TrimSpace(in.VehicleType)) {
		case VehicleBus, VehicleTrain, VehicleAirplane:
			fields = append(fields, FieldDistance, FieldTrips, FieldPassengers)
		case VehicleCar:
			fields = append(fields, FieldFuelType, FieldFuelConsumption, FieldTrips)
		case VehicleBicycle:
			fields = append(fields, FieldFuelConsumption, FieldTrips)
		}
	case SectorEnergy:
		fields = append(fields, FieldElectricitySource, FieldEnergyAmount)
	case SectorIndustrial:
		fields = append(fields, FieldIndustryType, FieldIndustrialAmount)
	case SectorWaste:
		fields = append(fields, FieldWasteAmount)
	}
	return fields
}

// Relevant returns a copy of in holding only the fields RequiredFields
// lists, so values left over from another sector are not echoed back.
func Relevant(in CalculationInput) CalculationInput {
	values := make(map[string]string, len(in.Fields()))
	for _, f := range in.Fields() {
		values[f.Name] = f.Value
	}
	var out CalculationInput
	for _, name := range RequiredFields(in) {
		out.Set(name, values[name])
	}
	return out
}

func parseTransport(in CalculationInput) (Activity, error) {
	p := &fieldParser{}
	a := TransportActivity{Vehicle: VehicleType(p.choice(FieldVehicleType, in.VehicleType))}

	switch a.Vehicle {
	case VehicleBus, VehicleTrain, VehicleAirplane:
		a.DistanceKm = p.quantity(FieldDistance, in.Distance)
		a.Trips = p.count(FieldTrips, in.Trips)
		a.Passengers = p.count(FieldPassengers, in.Passengers)
	case VehicleCar:
		a.Fuel = FuelType(p.choice(FieldFuelType, in.FuelType))
		a.FuelLitres = p.quantity(FieldFuelConsumption, in.FuelConsumption)
		a.Trips = p.count(FieldTrips, in.Trips)
	case VehicleBicycle:
		a.FuelLitres = p.quantity(FieldFuelConsumption, in.FuelConsumption)
		a.Trips = p.count(FieldTrips, in.Trips)
	case "":
		// already reported as missing
	default:
		p.add(unknownFactor(FieldVehicleType, string(a.Vehicle)))
	}
	return p.result(a)
}

// fieldParser accumulates field errors so a submission reports every
// problem at once.
type fieldParser struct {
	errs []error
}

func (p *fieldParser) add(err error) {
	p.errs = append(p.errs, err)
}

func (p *fieldParser) err() error {
	return errors.Join(p.errs...)
}

func (p *fieldParser) result(a Activity) (Activity, error) {
	if err := p.err(); err != nil {
		return nil, err
	}
	return a, nil
}

func (p *fieldParser) choice(field, raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		p.add(missingField(field))
	}
	return v
}

func (p *fieldParser) quantity(field, raw string) decimal.Decimal {
	d, err := ParseQuantity(field, raw)
	if err != nil {
		p.add(err)
	}
	return d
}

func (p *fieldParser) count(field, raw string) decimal.Decimal {
	d, err := ParseCount(field, raw)
	if err != nil {
		p.add(err)
	}
	return d
}

// ParseQuantity parses a non-negative decimal quantity. Empty input,
// malformed numbers, NaN and infinities are rejected with a *FieldError.
func ParseQuantity(field, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, missingField(field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalidField(field, raw, ReasonNotANumber)
	}
	if d.IsNegative() {
		return decimal.Zero, invalidField(field, raw, ReasonNegative)
	}
	return d, nil
}

// ParseCount parses a non-negative whole number such as a trip count.
func ParseCount(field, raw string) (decimal.Decimal, error) {
	d, err := ParseQuantity(field, raw)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsInteger() {
		return decimal.Zero, invalidField(field, raw, ReasonNotWhole)
	}
	return d, nil
}
