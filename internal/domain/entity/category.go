package entity

// CategoryHierarchy niveles de una ruta de categoría ("Tüm Ürünler>Saç Bakımı>Şampuan").
// Un nivel que no existe es ausente, no un string vacío.
type CategoryHierarchy struct {
	Path   string
	Levels []string
}

// Level devuelve el nivel n (1-based) y false si la ruta no llega a ese nivel.
func (h CategoryHierarchy) Level(n int) (string, bool) {
	if n < 1 || n > len(h.Levels) {
		return "", false
	}
	return h.Levels[n-1], true
}

// Depth cantidad de niveles de la ruta.
func (h CategoryHierarchy) Depth() int {
	return len(h.Levels)
}
