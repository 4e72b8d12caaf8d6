package core

// Category carries the display metadata for one spending classification.
// The registry is fixed at process start and never changes at runtime.
type Category struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var categories = []Category{
	{Key: "food", Name: "Food & Dining", Icon: "🍽️", Color: "#e07a5f"},
	{Key: "transport", Name: "Transportation", Icon: "🚗", Color: "#81a1c1"},
	{Key: "shopping", Name: "Shopping", Icon: "🛍️", Color: "#b893a3"},
	{Key: "utilities", Name: "Utilities", Icon: "⚡", Color: "#f2cc8f"},
	{Key: "entertainment", Name: "Entertainment", Icon: "🎬", Color: "#a8a3c7"},
	{Key: "health", Name: "Healthcare", Icon: "🏥", Color: "#7a9b76"},
	{Key: "education", Name: "Education", Icon: "📚", Color: "#5a9b9b"},
	{Key: "other", Name: "Other", Icon: "📋", Color: "#d4b896"},
}

var categoriesByKey = func() map[string]Category {
	m := make(map[string]Category, len(categories))
	for _, c := range categories {
		m[c.Key] = c
	}
	return m
}()

// Categories returns the registry entries in their fixed display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByKey looks up a registry entry by its key.
func CategoryByKey(key string) (Category, bool) {
	c, ok := categoriesByKey[key]
	return c, ok
}
