// Package xmlfeed genera un feed XML de productos para integraciones externas.
package xmlfeed

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	appcatalog "github.com/jhoicas/catalog-import/internal/application/catalog"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

var _ appcatalog.CatalogSink = (*Sink)(nil)

// Sink destino archivo XML:
//
//	<catalog count="N">
//	  <product id="..." sku="...">
//	    <name/> <description/> <price currency="TRY"/> <stock/> <category/> <image/>
//	  </product>
//	</catalog>
type Sink struct {
	path     string
	currency string
}

// NewSink construye el destino. currency vacío usa "TRY".
func NewSink(path, currency string) *Sink {
	if currency == "" {
		currency = "TRY"
	}
	return &Sink{path: path, currency: currency}
}

// Name identifica el destino en logs y en ImportResult.Outputs.
func (s *Sink) Name() string { return "xml:" + s.path }

// Write genera el documento y lo escribe en disco.
func (s *Sink) Write(ctx context.Context, items []entity.CatalogItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := s.Build(items)
	if err := doc.WriteToFile(s.path); err != nil {
		return fmt.Errorf("escribir feed XML: %w", err)
	}
	return nil
}

// Build arma el documento en memoria.
func (s *Sink) Build(items []entity.CatalogItem) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("catalog")
	root.CreateAttr("count", strconv.Itoa(len(items)))

	for _, it := range items {
		p := root.CreateElement("product")
		p.CreateAttr("id", it.ID)
		p.CreateAttr("sku", it.SKU)
		p.CreateElement("name").SetText(it.Name)
		p.CreateElement("description").SetText(it.Description)
		price := p.CreateElement("price")
		price.CreateAttr("currency", s.currency)
		price.SetText(it.Price.StringFixed(2))
		p.CreateElement("stock").SetText(strconv.Itoa(it.StockQuantity))
		p.CreateElement("category").SetText(it.Category)
		if it.ImageURL != "" {
			p.CreateElement("image").SetText(it.ImageURL)
		}
	}

	doc.Indent(2)
	return doc
}
