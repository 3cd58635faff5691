package catalog

import (
	"encoding/json"

	"github.com/jhoicas/catalog-import/internal/application/dto"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

// ToCatalogItemResponse mapea la entidad al formato de salida JSON.
func ToCatalogItemResponse(it entity.CatalogItem) dto.CatalogItemResponse {
	return dto.CatalogItemResponse{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		Price:         json.Number(it.Price.String()),
		StockQuantity: it.StockQuantity,
		Category:      it.Category,
		ImageURL:      it.ImageURL,
		SKU:           it.SKU,
		IsActive:      it.IsActive,
	}
}

// ToCatalogItemResponses mapea una lista conservando el orden.
func ToCatalogItemResponses(items []entity.CatalogItem) []dto.CatalogItemResponse {
	out := make([]dto.CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToCatalogItemResponse(it))
	}
	return out
}

func toSample(it entity.CatalogItem) dto.CatalogItemSample {
	return dto.CatalogItemSample{
		Name:  it.Name,
		Price: json.Number(it.Price.String()),
		Stock: it.StockQuantity,
	}
}
