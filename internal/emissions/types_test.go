package emissions

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_WholeCreditsTruncates(t *testing.T) {
	tests := []struct {
		emissions string
		want      int64
		enough    bool
	}{
		{emissions: "0", want: 0},
		{emissions: "937", want: 0},
		{emissions: "999.999", want: 0},
		{emissions: "1000", want: 1, enough: true},
		{emissions: "1999.99", want: 1, enough: true},
		{emissions: "2680", want: 2, enough: true},
	}

	for _, tt := range tests {
		t.Run(tt.emissions, func(t *testing.T) {
			r := NewResult(SectorWaste, decimal.RequireFromString(tt.emissions), time.Time{})
			assert.Equal(t, tt.want, r.WholeCredits().IntPart())
			assert.Equal(t, tt.enough, r.EnoughForCredit())
		})
	}
}

func TestResult_WholeCreditsLargeValues(t *testing.T) {
	r := NewResult(SectorWaste, decimal.RequireFromString("1e29"), time.Time{})
	assert.Equal(t, "100000000000000000000000000", r.WholeCredits().String())
	assert.True(t, r.WholeCredits().IsPositive())
	assert.True(t, r.EnoughForCredit())

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"whole_credits":100000000000000000000000000`)
}

func TestResult_MarshalJSON(t *testing.T) {
	at := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	r := NewResult(SectorEnergy, decimal.RequireFromString("937"), at)

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "energy", got["sector"])
	assert.InDelta(t, 937.0, got["emissions_kg"], 1e-9)
	assert.InDelta(t, 0.937, got["credits"], 1e-9)
	assert.InDelta(t, 0.0, got["whole_credits"], 1e-9)
	assert.Equal(t, "2026-10-18T00:00:00Z", got["calculated_at"])
}

func TestCalculationInput_FieldsAndSet(t *testing.T) {
	var in CalculationInput
	for _, f := range in.Fields() {
		require.True(t, in.Set(f.Name, "v-"+f.Name), "field %s must be settable", f.Name)
	}
	for _, f := range in.Fields() {
		assert.Equal(t, "v-"+f.Name, f.Value)
	}
	assert.False(t, in.Set("colour", "green"))
	assert.Len(t, in.Fields(), 12)
}

func TestSector_Valid(t *testing.T) {
	for _, s := range Sectors() {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Sector("").Valid())
	assert.False(t, Sector("Waste").Valid())
}

func TestFactorTable_Rows(t *testing.T) {
	rows := DefaultFactors().Rows()
	require.NotEmpty(t, rows)

	bySubtype := map[string]FactorRow{}
	for _, r := range rows {
		bySubtype[string(r.Sector)+"/"+r.Subtype] = r
	}

	assert.InDelta(t, 2.31, bySubtype["transportation/gasoline"].KgCO2e, 1e-12)
	assert.Equal(t, "passenger-km", bySubtype["transportation/bus"].Unit)
	assert.Equal(t, "litre", bySubtype["transportation/bicycle"].Unit)
	assert.InDelta(t, 0.937, bySubtype["energy/coal"].KgCO2e, 1e-12)
	assert.InDelta(t, 1.8, bySubtype["industrial/steel"].KgCO2e, 1e-12)
	assert.InDelta(t, 0.10, bySubtype["waste/"].KgCO2e, 1e-12)
	assert.Len(t, rows, 13)
}

func TestEquivalencies(t *testing.T) {
	t.Run("below threshold", func(t *testing.T) {
		r := NewResult(SectorWaste, decimal.RequireFromString("0.5"), time.Time{})
		assert.Nil(t, r.Equivalencies())
	})

	t.Run("150 kg reference", func(t *testing.T) {
		r := NewResult(SectorWaste, decimal.RequireFromString("150"), time.Time{})
		eq := r.Equivalencies()
		require.Len(t, eq, 3)
		assert.Equal(t, EquivalencyMilesDriven, eq[0].Kind)
		assert.InDelta(t, 781.25, eq[0].Value, 0.01)
		assert.Equal(t, EquivalencySmartphonesCharged, eq[1].Kind)
		assert.InDelta(t, 18248.18, eq[1].Value, 0.01)
		assert.Equal(t, EquivalencyTreeSeedlings, eq[2].Kind)
		assert.InDelta(t, 2.5, eq[2].Value, 0.001)
	})

	t.Run("kind strings", func(t *testing.T) {
		assert.Equal(t, "MilesDriven", EquivalencyMilesDriven.String())
		assert.Equal(t, "EquivalencyKind(9)", EquivalencyKind(9).String())
	})
}
