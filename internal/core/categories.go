package core

// Category is static reference data: the fixed enumeration every
// transaction's CategoryID resolves into. Loaded once, never mutated.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// UncategorizedID is the sentinel used when a transaction carries no
// category, or one that does not resolve.
const UncategorizedID = "other"

// Categories is the fixed table, in enumeration order. Order matters: the
// suggestion matcher picks the first match.
var Categories = []Category{
	{ID: "food", Name: "Food", Color: "#e76e50"},
	{ID: "shopping", Name: "Shopping", Color: "#2a9d90"},
	{ID: "transport", Name: "Transport", Color: "#274754"},
	{ID: "entertainment", Name: "Entertainment", Color: "#e8c468"},
	{ID: "home", Name: "Home", Color: "#f4a462"},
	{ID: "health", Name: "Health", Color: "#e76e50"},
	{ID: "bills", Name: "Bills & Fees", Color: "#2a9d90"},
	{ID: "savings", Name: "Savings", Color: "#274754"},
	{ID: "other", Name: "Other", Color: "#e8c468"},
}

// CategoryByID looks a category up by id.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// NormalizeCategoryID maps empty or unknown ids onto the uncategorized
// sentinel so stored transactions always resolve.
func NormalizeCategoryID(id string) string {
	if _, ok := CategoryByID(id); ok {
		return id
	}
	return UncategorizedID
}
