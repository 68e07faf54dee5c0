// Package catalog define los catálogos cerrados del registro: marcas y modelos
// de vehículos, colores y tipos de servicio. Los formularios seleccionan por
// value; el valor especial "other" habilita un texto libre (custom) que las
// funciones de etiqueta priorizan al mostrar.
package catalog

// Option es una entrada de catálogo: value interno y label de presentación.
type Option struct {
	Value string
	Label string
}

// Other es el valor de catálogo que habilita texto libre.
const Other = "other"

// VehicleBrands marcas de vehículos disponibles en el registro.
var VehicleBrands = []Option{
	{"toyota", "Toyota"},
	{"honda", "Honda"},
	{"nissan", "Nissan"},
	{"hyundai", "Hyundai"},
	{"kia", "Kia"},
	{"mazda", "Mazda"},
	{"ford", "Ford"},
	{"chevrolet", "Chevrolet"},
	{"jeep", "Jeep"},
	{"bmw", "BMW"},
	{"mercedes", "Mercedes-Benz"},
	{"audi", "Audi"},
	{"volkswagen", "Volkswagen"},
	{"mitsubishi", "Mitsubishi"},
	{"suzuki", "Suzuki"},
	{"subaru", "Subaru"},
	{"lexus", "Lexus"},
	{"acura", "Acura"},
	{"infiniti", "Infiniti"},
	{Other, "Otro"},
}

// VehicleModels modelos por marca. Las marcas sin lista propia usan defaultModels.
var VehicleModels = map[string][]Option{
	"toyota": {
		{"corolla", "Corolla"},
		{"camry", "Camry"},
		{"rav4", "RAV4"},
		{"hilux", "Hilux"},
		{"prado", "Land Cruiser Prado"},
		{"yaris", "Yaris"},
		{"fortuner", "Fortuner"},
		{"tacoma", "Tacoma"},
		{Other, "Otro"},
	},
	"honda": {
		{"civic", "Civic"},
		{"accord", "Accord"},
		{"crv", "CR-V"},
		{"hrv", "HR-V"},
		{"pilot", "Pilot"},
		{"fit", "Fit"},
		{Other, "Otro"},
	},
	"nissan": {
		{"sentra", "Sentra"},
		{"altima", "Altima"},
		{"pathfinder", "Pathfinder"},
		{"rogue", "Rogue"},
		{"frontier", "Frontier"},
		{"kicks", "Kicks"},
		{"versa", "Versa"},
		{Other, "Otro"},
	},
	"hyundai": {
		{"elantra", "Elantra"},
		{"sonata", "Sonata"},
		{"tucson", "Tucson"},
		{"santafe", "Santa Fe"},
		{"accent", "Accent"},
		{"creta", "Creta"},
		{Other, "Otro"},
	},
	"kia": {
		{"rio", "Rio"},
		{"forte", "Forte"},
		{"optima", "Optima"},
		{"sportage", "Sportage"},
		{"sorento", "Sorento"},
		{"seltos", "Seltos"},
		{Other, "Otro"},
	},
}

var defaultModels = []Option{{Other, "Otro"}}

// VehicleColors colores con su etiqueta en español.
var VehicleColors = []Option{
	{"white", "Blanco"},
	{"black", "Negro"},
	{"silver", "Plateado"},
	{"gray", "Gris"},
	{"red", "Rojo"},
	{"blue", "Azul"},
	{"green", "Verde"},
	{"yellow", "Amarillo"},
	{"orange", "Naranja"},
	{"brown", "Marrón"},
	{"beige", "Beige"},
	{"gold", "Dorado"},
	{Other, "Otro"},
}

var colorHex = map[string]string{
	"white":  "#FFFFFF",
	"black":  "#1a1a1a",
	"silver": "#C0C0C0",
	"gray":   "#808080",
	"red":    "#DC2626",
	"blue":   "#2563EB",
	"green":  "#16A34A",
	"yellow": "#EAB308",
	"orange": "#EA580C",
	"brown":  "#78350F",
	"beige":  "#D4C4A8",
	"gold":   "#D4AF37",
	Other:    "#6B7280",
}

// Categorías de servicio.
const (
	CategoryFluids   = "fluids"
	CategoryFilters  = "filters"
	CategoryParts    = "parts"
	CategoryServices = "services"
)

// ServiceCategories categorías de servicio del taller.
var ServiceCategories = []Option{
	{CategoryFluids, "Fluidos"},
	{CategoryFilters, "Filtros"},
	{CategoryParts, "Partes"},
	{CategoryServices, "Servicios"},
}

// ServiceItems tipos de servicio por categoría.
var ServiceItems = map[string][]Option{
	CategoryFluids: {
		{"motor_oil", "Aceite Motor"},
		{"coolant", "Coolant"},
		{"power_steering", "Power Steering"},
		{"brake_fluid", "Líquido Freno"},
		{"transmission_oil", "Aceite Transmisión"},
		{"differential_grease", "Grasa Diferencial"},
		{"oil_additive", "Aditivo Aceite"},
		{"transmission_additive", "Aditivo Transmisión"},
		{"fuel_additive", "Aditivo Combustible"},
	},
	CategoryFilters: {
		{"oil_filter", "Filtro Aceite"},
		{"air_filter", "Filtro Aire"},
		{"fuel_filter", "Filtro Combustible"},
		{"cabin_filter", "Filtro Cabina"},
	},
	CategoryParts: {
		{"battery", "Batería"},
		{"tires", "Gomas"},
		{"front_belt", "Banda Delantera"},
		{"rear_belt", "Banda Trasera"},
		{"spark_plugs", "Bujías"},
	},
	CategoryServices: {
		{"alignment", "Alineación"},
		{"balancing", "Balanceo"},
		{"greasing", "Engrase"},
		{"brake_check", "Chequeo Frenos"},
		{"motor_flush", "Flush Motor"},
		{"radiator_flush", "Flush Radiador"},
		{"front_axle_repair", "Rep. Tren Delantero"},
	},
}
