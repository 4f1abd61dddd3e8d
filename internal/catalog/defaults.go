package catalog

import "github.com/jask/maintstock/internal/inventory"

// Defaults returns the built-in seed used when no catalog file is configured.
// A fresh slice is returned on every call.
func Defaults() []inventory.Item {
	return []inventory.Item{
		{ID: "M-001", Name: "Ball Bearing 6205", Category: inventory.CategoryMechanic, Stock: 45, MinStock: 10, Unit: "pcs"},
		{ID: "M-002", Name: "V-Belt B-52", Category: inventory.CategoryMechanic, Stock: 5, MinStock: 8, Unit: "pcs"},
		{ID: "E-101", Name: "Proximity Sensor PNP", Category: inventory.CategoryElectric, Stock: 12, MinStock: 5, Unit: "unit"},
		{ID: "E-102", Name: "Contactor 220V 32A", Category: inventory.CategoryElectric, Stock: 3, MinStock: 5, Unit: "unit"},
		{ID: "T-201", Name: "Wrench Set Metric", Category: inventory.CategoryTools, Stock: 8, MinStock: 2, Unit: "set"},
		{ID: "M-003", Name: "Hydraulic Oil ISO 68", Category: inventory.CategoryMechanic, Stock: 150, MinStock: 50, Unit: "liter"},
		{ID: "E-103", Name: "Limit Switch Roller", Category: inventory.CategoryElectric, Stock: 20, MinStock: 10, Unit: "pcs"},
		{ID: "T-202", Name: "Digital Multimeter", Category: inventory.CategoryTools, Stock: 4, MinStock: 3, Unit: "unit"},
		{ID: "M-004", Name: "Grease Lithium EP2", Category: inventory.CategoryMechanic, Stock: 12, MinStock: 15, Unit: "pail"},
		{ID: "E-104", Name: "PLC Module Input", Category: inventory.CategoryElectric, Stock: 2, MinStock: 2, Unit: "unit"},
	}
}
