package dto

// NameCount par nombre/cantidad para distribuciones (categorías, marcas, bodegas).
type NameCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// DepthCount filas con una profundidad de categoría dada.
type DepthCount struct {
	Depth int `json:"depth" yaml:"depth"`
	Rows  int `json:"rows" yaml:"rows"`
}

// PriceStats estadísticas de precios del export completo (sin filtrar).
type PriceStats struct {
	PricedRows       int    `json:"priced_rows" yaml:"priced_rows"`
	DiscountedRows   int    `json:"discounted_rows" yaml:"discounted_rows"`
	AvgSalePrice     string `json:"avg_sale_price" yaml:"avg_sale_price"`
	AvgDiscountPrice string `json:"avg_discount_price" yaml:"avg_discount_price"`
	AvgDiscountRate  string `json:"avg_discount_rate" yaml:"avg_discount_rate"` // porcentaje
}

// CatalogReport análisis de jerarquía de categorías, marcas, precios y stock.
type CatalogReport struct {
	TotalRows         int          `json:"total_rows" yaml:"total_rows"`
	DepthDistribution []DepthCount `json:"depth_distribution" yaml:"depth_distribution"`
	MainCategories    []NameCount  `json:"main_categories" yaml:"main_categories"`
	SubCategories     []NameCount  `json:"sub_categories" yaml:"sub_categories"`
	DetailCategories  []NameCount  `json:"detail_categories" yaml:"detail_categories"`
	Brands            []NameCount  `json:"brands" yaml:"brands"`
	Prices            PriceStats   `json:"prices" yaml:"prices"`
	WarehouseStock    []NameCount  `json:"warehouse_stock" yaml:"warehouse_stock"`
}
