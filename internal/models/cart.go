package models

// CartItem reprend les champs du produit + la quantité choisie.
// Invariant : au plus un item par id produit, quantity >= 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartTotal calcule le total du panier (prix × quantité)
func CartTotal(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
