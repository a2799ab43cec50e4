package category

type Category struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Type string `gorm:"type:text;not null" json:"type"`
}

func (Category) TableName() string {
	return "categories"
}

// Lookup maps category ids to their labels, as rendered in responses.
// encoding/json sorts the keys, so the query order does not reach clients.
type Lookup map[int]string

func NewLookup(categories []Category) Lookup {
	lookup := make(Lookup, len(categories))
	for _, c := range categories {
		lookup[c.ID] = c.Type
	}
	return lookup
}
