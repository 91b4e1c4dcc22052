package models

// SizeVariant is a leaf of the product variant hierarchy.
type SizeVariant struct {
	Size string `json:"size"` // Size название размера (например, "M", "42")
	Qty  int    `json:"qty"`  // Qty количество на складе для этого размера
}

// ColorVariant is a middle node of the product variant hierarchy.
// A color either carries its own sizes or a flat quantity, never both.
type ColorVariant struct {
	Color    string        `json:"color"`              // Color название цвета
	Sizes    []SizeVariant `json:"sizes,omitempty"`    // Sizes размеры внутри цвета
	Quantity int           `json:"quantity,omitempty"` // Quantity количество без размеров
}

// TotalQuantity returns the stock held under this color node.
func (c *ColorVariant) TotalQuantity() int {
	if len(c.Sizes) == 0 {
		return c.Quantity
	}
	var total int
	for i := range c.Sizes {
		total += c.Sizes[i].Qty
	}
	return total
}

// Product represents a stock record. Quantity always equals the sum
// over the variant hierarchy: the flat value if there are no variants,
// otherwise the sum of color/size quantities.
type Product struct {
	ID           string         `json:"id,omitempty"`
	Code         string         `json:"code"`
	Name         string         `json:"name"`
	Shop         string         `json:"shop"`
	Section      string         `json:"section,omitempty"`
	MerchantName string         `json:"merchantName,omitempty"`
	Type         string         `json:"type,omitempty"`
	Colors       []ColorVariant `json:"colors,omitempty"`
	Sizes        []SizeVariant  `json:"sizes,omitempty"`
	Quantity     int            `json:"quantity"`
	BuyPrice     float64        `json:"buyPrice"`
	SellPrice    float64        `json:"sellPrice"`
	FinalPrice   float64        `json:"finalPrice,omitempty"`
}

// TotalQuantity recomputes the product quantity over the variant
// hierarchy, ignoring the stored Quantity field when variants exist.
func (p *Product) TotalQuantity() int {
	if len(p.Colors) > 0 {
		var total int
		for i := range p.Colors {
			total += p.Colors[i].TotalQuantity()
		}
		return total
	}
	if len(p.Sizes) > 0 {
		var total int
		for i := range p.Sizes {
			total += p.Sizes[i].Qty
		}
		return total
	}
	return p.Quantity
}

// HasVariants reports whether the product tracks stock per color/size.
func (p *Product) HasVariants() bool {
	return len(p.Colors) > 0 || len(p.Sizes) > 0
}

// Clone returns a deep copy of the product, so delta computations can
// work on a snapshot without mutating the cached record.
func (p *Product) Clone() *Product {
	out := *p
	if p.Colors != nil {
		out.Colors = make([]ColorVariant, len(p.Colors))
		for i := range p.Colors {
			out.Colors[i] = p.Colors[i]
			if p.Colors[i].Sizes != nil {
				out.Colors[i].Sizes = make([]SizeVariant, len(p.Colors[i].Sizes))
				copy(out.Colors[i].Sizes, p.Colors[i].Sizes)
			}
		}
	}
	if p.Sizes != nil {
		out.Sizes = make([]SizeVariant, len(p.Sizes))
		copy(out.Sizes, p.Sizes)
	}
	return &out
}
