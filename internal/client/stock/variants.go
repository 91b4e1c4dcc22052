// Package stock maintains product quantities across sales and returns,
// walking the product→color→size variant hierarchy and keeping the
// total consistent with the leaves.
package stock

import "github.com/dukkan-app/dukkan/internal/models"

// deduct applies the sale of item to a copy of p. It returns the
// updated product and whether the product should be deleted because its
// stock reached zero. Quantities are floored at zero; depleted size
// leaves and color nodes are pruned.
func deduct(p *models.Product, item *models.CartItem) (*models.Product, bool) {
	out := p.Clone()

	if !out.HasVariants() || (item.Color == "" && item.Size == "") {
		// Товар без вариантов — плоское количество
		newQty := out.Quantity - item.Quantity
		if newQty <= 0 {
			return out, true
		}
		out.Quantity = newQty
		return out, false
	}

	if len(out.Colors) > 0 {
		for ci := range out.Colors {
			c := &out.Colors[ci]
			if c.Color != item.Color {
				continue
			}
			if item.Size != "" && len(c.Sizes) > 0 {
				for si := range c.Sizes {
					if c.Sizes[si].Size == item.Size {
						c.Sizes[si].Qty = max(0, c.Sizes[si].Qty-item.Quantity)
					}
				}
				c.Sizes = pruneSizes(c.Sizes)
			} else {
				c.Quantity = max(0, c.Quantity-item.Quantity)
			}
		}
		out.Colors = pruneColors(out.Colors)
	}

	if len(out.Sizes) > 0 {
		for si := range out.Sizes {
			if out.Sizes[si].Size == item.Size {
				out.Sizes[si].Qty = max(0, out.Sizes[si].Qty-item.Quantity)
			}
		}
		out.Sizes = pruneSizes(out.Sizes)
	}

	// Дерево вариантов опустело — товара больше нет, каким бы ни
	// было сохранённое плоское количество
	if len(out.Colors) == 0 && len(out.Sizes) == 0 {
		return out, true
	}
	total := out.TotalQuantity()
	if total <= 0 {
		return out, true
	}
	out.Quantity = total
	return out, false
}

// restore puts the returned quantity of item back into a copy of p,
// creating missing color and size nodes inside existing variant arrays,
// and recomputes the stored total. When the product does not track the
// variant the item names, the quantity goes back into the flat stock so
// nothing already on hand is lost.
func restore(p *models.Product, item *models.CartItem) *models.Product {
	out := p.Clone()

	switch {
	case item.Color != "" && len(out.Colors) > 0:
		ci := -1
		for i := range out.Colors {
			if out.Colors[i].Color == item.Color {
				ci = i
				break
			}
		}
		if ci < 0 {
			out.Colors = append(out.Colors, models.ColorVariant{Color: item.Color})
			ci = len(out.Colors) - 1
		}
		c := &out.Colors[ci]
		if item.Size != "" {
			si := -1
			for i := range c.Sizes {
				if c.Sizes[i].Size == item.Size {
					si = i
					break
				}
			}
			if si < 0 {
				c.Sizes = append(c.Sizes, models.SizeVariant{Size: item.Size})
				si = len(c.Sizes) - 1
			}
			c.Sizes[si].Qty += item.Quantity
		} else {
			c.Quantity += item.Quantity
		}
	case item.Size != "" && len(out.Sizes) > 0:
		si := -1
		for i := range out.Sizes {
			if out.Sizes[i].Size == item.Size {
				si = i
				break
			}
		}
		if si < 0 {
			out.Sizes = append(out.Sizes, models.SizeVariant{Size: item.Size})
			si = len(out.Sizes) - 1
		}
		out.Sizes[si].Qty += item.Quantity
	default:
		// Без вариантов, либо форма вариантов не совпала — плоский остаток
		out.Quantity += item.Quantity
		return out
	}

	out.Quantity = out.TotalQuantity()
	return out
}

// productFromItem rebuilds a minimal stock record for a returned item
// whose product no longer exists, for example one deleted when its
// stock reached zero.
func productFromItem(item *models.CartItem) *models.Product {
	p := &models.Product{
		Code:         item.Code,
		Name:         item.Name,
		Shop:         item.Shop,
		Section:      item.Section,
		MerchantName: item.MerchantName,
		Type:         item.Type,
		BuyPrice:     item.BuyPrice,
		SellPrice:    item.SellPrice,
		Quantity:     item.Quantity,
	}
	switch {
	case item.Color != "" && item.Size != "":
		p.Colors = []models.ColorVariant{{
			Color: item.Color,
			Sizes: []models.SizeVariant{{Size: item.Size, Qty: item.Quantity}},
		}}
	case item.Color != "":
		p.Colors = []models.ColorVariant{{Color: item.Color, Quantity: item.Quantity}}
	case item.Size != "":
		p.Sizes = []models.SizeVariant{{Size: item.Size, Qty: item.Quantity}}
	}
	return p
}

func pruneSizes(sizes []models.SizeVariant) []models.SizeVariant {
	out := sizes[:0]
	for _, s := range sizes {
		if s.Qty > 0 {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// pruneColors drops color nodes left without stock: sized colors with
// every size pruned, flat colors at zero.
func pruneColors(colors []models.ColorVariant) []models.ColorVariant {
	out := colors[:0]
	for _, c := range colors {
		if len(c.Sizes) > 0 || c.Quantity > 0 {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
