package models

// Menu categories are top-level collections of their own, one per category,
// matching the layout the storefront reads.
var MenuCategories = []string{"paan", "chaat", "beverages"}

func ValidMenuCategory(category string) bool {
	for _, c := range MenuCategories {
		if c == category {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID              string  `json:"id"`
	Category        string  `json:"category"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	FullDescription string  `json:"fulldescription"`
	Price           float64 `json:"price"`
	Image           string  `json:"image"`
	IsVeg           bool    `json:"isVeg"`
}

func (m MenuItem) Doc() map[string]interface{} {
	return map[string]interface{}{
		"name":            m.Name,
		"description":     m.Description,
		"fulldescription": m.FullDescription,
		"price":           m.Price,
		"image":           m.Image,
		"isVeg":           m.IsVeg,
	}
}

func MenuItemFromDoc(id, category string, data map[string]interface{}) MenuItem {
	return MenuItem{
		ID:              id,
		Category:        category,
		Name:            docString(data["name"]),
		Description:     docString(data["description"]),
		FullDescription: docString(data["fulldescription"]),
		Price:           docFloat(data["price"]),
		Image:           docString(data["image"]),
		IsVeg:           docBool(data["isVeg"]),
	}
}
