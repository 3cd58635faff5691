package entity

// Warehouse bodega o sucursal que aporta una columna de stock al export ("Stok:<bodega>").
type Warehouse struct {
	Name   string
	Column string // nombre exacto del header en el CSV
}

// WarehouseStock valor crudo de stock de una bodega para una fila.
type WarehouseStock struct {
	Warehouse string
	Raw       string
}
