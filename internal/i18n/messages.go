package i18n

// Message keys used outside plain labels.
const (
	MsgReportTitle      = "Carbon Credit Calculator Report"
	MsgAppTitle         = "AI-Powered Carbon Credit Calculator"
	MsgDate             = "Date"
	MsgMonthlyEmissions = "Monthly Emissions"
	MsgMonthlyCarbon    = "Monthly Carbon Emissions"
	MsgSuggestedCredits = "Suggested Carbon Credits"
	MsgInputData        = "Input Data"
	MsgNotEnough        = "There was not enough emission to buy 1 carbon credit."
	MsgChartTitle       = "Emissions and Credits Overview"
	MsgValues           = "Values"
	MsgResults          = "Results"
	MsgSectorNotChosen  = "Sector not selected"
	MsgSelectSector     = "Select Sector"
	MsgCalculate        = "Calculate Emissions"
	MsgCalculating      = "Calculating..."
	MsgDownloadPDF      = "Download PDF"
	MsgReportSaved      = "Report saved to %s"
	MsgEquivalent       = "Equivalent to driving ~%s miles or charging ~%s smartphones"
	MsgTrees            = "Offsetting it takes ~%s tree seedlings grown for 10 years"
	MsgHome             = "Home"
	MsgAbout            = "About"
	MsgCalculator       = "Calculator"
	MsgDarkMode         = "Dark mode"
	MsgLanguage         = "Language"
	MsgQuit             = "Quit"
	MsgNavigate         = "Navigate"
	MsgChange           = "Change"
	MsgFields           = "Fields"
	MsgWelcome          = "Estimate your monthly emissions and the carbon credits needed to offset them."
	MsgAboutBody        = "One carbon credit represents one tonne (1000 kg) of CO2e. Credits are only sold whole, so fractions are truncated."
	MsgError            = "Error"
	MsgFooter           = "Carbon Credit Calculator. All rights reserved."
	MsgNothingToExport  = "Calculate emissions before downloading the report."
	MsgNotSelected      = "Not selected"
	MsgPages            = "Pages"
	MsgReportID         = "Report ID"
)

//nolint:gochecknoglobals // Static translation table.
var portuguese = map[string]string{
	MsgReportTitle:      "Relatório da Calculadora de Créditos de Carbono",
	MsgAppTitle:         "Calculadora de Créditos de Carbono com IA",
	MsgDate:             "Data",
	MsgMonthlyEmissions: "Emissões Mensais",
	MsgMonthlyCarbon:    "Emissões Mensais de Carbono",
	MsgSuggestedCredits: "Créditos de Carbono Sugeridos",
	MsgInputData:        "Dados de Entrada",
	MsgNotEnough:        "Não houve emissão suficiente para comprar 1 crédito de carbono.",
	MsgChartTitle:       "Visão Geral de Emissões e Créditos",
	MsgValues:           "Valores",
	MsgResults:          "Resultados",
	MsgSectorNotChosen:  "Setor não selecionado",
	MsgSelectSector:     "Selecione o Setor",
	MsgCalculate:        "Calcular Emissões",
	MsgCalculating:      "Calculando...",
	MsgDownloadPDF:      "Baixar PDF",
	MsgReportSaved:      "Relatório salvo em %s",
	MsgEquivalent:       "Equivalente a dirigir ~%s milhas ou carregar ~%s smartphones",
	MsgTrees:            "Compensar exige ~%s mudas de árvores cultivadas por 10 anos",
	MsgHome:             "Início",
	MsgAbout:            "Sobre",
	MsgCalculator:       "Calculadora",
	MsgDarkMode:         "Modo escuro",
	MsgLanguage:         "Idioma",
	MsgQuit:             "Sair",
	MsgNavigate:         "Navegar",
	MsgChange:           "Alterar",
	MsgFields:           "Campos",
	MsgWelcome:          "Estime suas emissões mensais e os créditos de carbono necessários para compensá-las.",
	MsgAboutBody:        "Um crédito de carbono representa uma tonelada (1000 kg) de CO2e. Créditos são vendidos apenas inteiros, então frações são truncadas.",
	MsgError:            "Erro",
	MsgFooter:           "Calculadora de Créditos de Carbono. Todos os direitos reservados.",
	MsgNothingToExport:  "Calcule as emissões antes de baixar o relatório.",
	MsgNotSelected:      "Não selecionado",
	MsgPages:            "Páginas",
	MsgReportID:         "ID do Relatório",

	// Field error reasons.
	"is required":            "é obrigatório",
	"is not a number":        "não é um número",
	"must not be negative":   "não pode ser negativo",
	"must be a whole number": "deve ser um número inteiro",
	"has no emission factor": "não possui fator de emissão",

	// Field labels.
	"Sector":                     "Setor",
	"Vehicle Type":               "Tipo de Veículo",
	"Fuel Type":                  "Tipo de Combustível",
	"Fuel Consumption (L)":       "Consumo de Combustível (L)",
	"Distance (km)":              "Distância (km)",
	"Number of Trips":            "Número de Viagens",
	"Number of Passengers":       "Número de Passageiros",
	"Energy Source":              "Fonte de Energia",
	"Energy Consumption (kWh)":   "Consumo de Energia (kWh)",
	"Industry Type":              "Tipo de Indústria",
	"Production Amount (tonnes)": "Quantidade Produzida (toneladas)",
	"Waste Amount (kg)":          "Quantidade de Resíduos (kg)",

	// Option labels.
	"Transportation": "Transporte",
	"Energy":         "Energia",
	"Industrial":     "Industrial",
	"Waste":          "Resíduos",
	"Car":            "Carro",
	"Airplane":       "Avião",
	"Bus":            "Ônibus",
	"Train":          "Trem",
	"Motorcycle":     "Motocicleta",
	"Gasoline":       "Gasolina",
	"Diesel":         "Diesel",
	"Electric":       "Elétrico",
	"Coal":           "Carvão",
	"Natural Gas":    "Gás Natural",
	"Renewable":      "Renovável",
	"Cement":         "Cimento",
	"Steel":          "Aço",
}

// fieldLabels maps input field names to their English label keys.
//
//nolint:gochecknoglobals // Static lookup table.
var fieldLabels = map[string]string{
	"sector":            "Sector",
	"vehicleType":       "Vehicle Type",
	"fuelType":          "Fuel Type",
	"fuelConsumption":   "Fuel Consumption (L)",
	"distance":          "Distance (km)",
	"trips":             "Number of Trips",
	"passengers":        "Number of Passengers",
	"electricitySource": "Energy Source",
	"energyAmount":      "Energy Consumption (kWh)",
	"industryType":      "Industry Type",
	"industrialAmount":  "Production Amount (tonnes)",
	"wasteAmount":       "Waste Amount (kg)",
}

// optionLabels maps enumerated input values to their English label keys.
//
//nolint:gochecknoglobals // Static lookup table.
var optionLabels = map[string]string{
	"transportation": "Transportation",
	"energy":         "Energy",
	"industrial":     "Industrial",
	"waste":          "Waste",
	"car":            "Car",
	"airplane":       "Airplane",
	"bus":            "Bus",
	"train":          "Train",
	"bicycle":        "Motorcycle",
	"gasoline":       "Gasoline",
	"diesel":         "Diesel",
	"electric":       "Electric",
	"coal":           "Coal",
	"naturalGas":     "Natural Gas",
	"renewable":      "Renewable",
	"cement":         "Cement",
	"steel":          "Steel",
}

// Field returns the translated label for an input field name.
func (t *Translator) Field(name string) string {
	if key, ok := fieldLabels[name]; ok {
		return t.T(key)
	}
	return name
}

// Option returns the translated label for an enumerated value such as
// "bus" or "naturalGas". Free-form values are returned unchanged.
func (t *Translator) Option(value string) string {
	if key, ok := optionLabels[value]; ok {
		return t.T(key)
	}
	return value
}
