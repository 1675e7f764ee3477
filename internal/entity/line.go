package entity

// OrderLine is one catalog item's entry in a draft cart. A cart never holds two
// lines for the same item; re-adding an item merges into the existing line.
type OrderLine struct {
	ItemID   int    `json:"item_id"  validate:"required,gte=1"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
	Size     string `json:"size"     validate:"required"`
}
