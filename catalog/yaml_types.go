package catalog

// File is the YAML catalog document.
type File struct {
	Promotions []PromotionEntry `yaml:"promotions,omitempty"`
	Products   []ProductEntry   `yaml:"products"`
}

// PromotionEntry declares a promotion that products reference by ID.
type PromotionEntry struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Percent string `yaml:"percent,omitempty"`
}

// ProductEntry declares one product.
type ProductEntry struct {
	Name        string   `yaml:"name"`
	Price       string   `yaml:"price"`
	Stock       string   `yaml:"stock,omitempty"` // "limited" (default) or "unlimited"
	Quantity    int      `yaml:"quantity,omitempty"`
	MaxQuantity int      `yaml:"max_quantity,omitempty"`
	Promotions  []string `yaml:"promotions,omitempty"`
}
