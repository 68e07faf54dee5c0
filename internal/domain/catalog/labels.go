package catalog

func findLabel(opts []Option, value string) (string, bool) {
	for _, o := range opts {
		if o.Value == value {
			return o.Label, true
		}
	}
	return "", false
}

// BrandLabel devuelve la etiqueta de la marca. Si la marca es "other" y hay un
// texto libre, se usa ese texto; si el valor no está en el catálogo se devuelve
// tal cual.
func BrandLabel(brand, custom string) string {
	if brand == Other && custom != "" {
		return custom
	}
	if label, ok := findLabel(VehicleBrands, brand); ok {
		return label
	}
	return brand
}

// ModelLabel devuelve la etiqueta del modelo según la marca, con el mismo
// tratamiento de "other" y fallback que BrandLabel.
func ModelLabel(brand, model, custom string) string {
	if model == Other && custom != "" {
		return custom
	}
	if label, ok := findLabel(ModelsForBrand(brand), model); ok {
		return label
	}
	return model
}

// ColorLabel devuelve la etiqueta del color.
func ColorLabel(color, custom string) string {
	if color == Other && custom != "" {
		return custom
	}
	if label, ok := findLabel(VehicleColors, color); ok {
		return label
	}
	return color
}

// ColorHex devuelve el color hexadecimal para presentación; colores
// desconocidos caen al gris de "other".
func ColorHex(color string) string {
	if hex, ok := colorHex[color]; ok {
		return hex
	}
	return colorHex[Other]
}

// ModelsForBrand devuelve los modelos de la marca, o la lista por defecto
// (solo "Otro") para marcas sin catálogo propio.
func ModelsForBrand(brand string) []Option {
	if models, ok := VehicleModels[brand]; ok {
		return models
	}
	return defaultModels
}

// CategoryLabel devuelve la etiqueta de la categoría de servicio.
func CategoryLabel(category string) string {
	if label, ok := findLabel(ServiceCategories, category); ok {
		return label
	}
	return category
}

// ServiceItemLabel devuelve la etiqueta del tipo de servicio dentro de su
// categoría; tipos desconocidos se devuelven tal cual.
func ServiceItemLabel(category, itemType string) string {
	if label, ok := findLabel(ServiceItems[category], itemType); ok {
		return label
	}
	return itemType
}

// ValidCategory indica si la categoría existe en el catálogo.
func ValidCategory(category string) bool {
	_, ok := ServiceItems[category]
	return ok
}

// ValidServiceItem indica si el tipo de servicio pertenece a la categoría.
func ValidServiceItem(category, itemType string) bool {
	_, ok := findLabel(ServiceItems[category], itemType)
	return ok
}

// ValidBrand indica si la marca existe en el catálogo.
func ValidBrand(brand string) bool {
	_, ok := findLabel(VehicleBrands, brand)
	return ok
}

// ValidModel indica si el modelo pertenece a la marca (o es "other").
func ValidModel(brand, model string) bool {
	_, ok := findLabel(ModelsForBrand(brand), model)
	return ok
}

// ValidColor indica si el color existe en el catálogo.
func ValidColor(color string) bool {
	_, ok := findLabel(VehicleColors, color)
	return ok
}
