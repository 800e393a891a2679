package domain

// CartItem is a single purchased unit. Items have no identity beyond their
// name; two entries with the same name are the same product.
type CartItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Cart is an ordered list of line entries. The list is the source of truth;
// any aggregation is computed on read.
type Cart struct {
	Items []CartItem
}

func (c *Cart) Add(name string, price float64) {
	c.Items = append(c.Items, CartItem{Name: name, Price: price})
}

// RemoveAt deletes exactly one entry by position. Out-of-range indexes are a
// no-op and report false.
func (c *Cart) RemoveAt(i int) bool {
	if i < 0 || i >= len(c.Items) {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total sums every entry individually. Duplicates are not collapsed.
func (c Cart) Total() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.Price
	}
	return sum
}

// AggregateLine is a display row for a group of identical entries.
type AggregateLine struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type aggregateKey struct {
	name  string
	price float64
}

// Aggregate groups entries by (name, unit price) in first-seen order. Keying
// on the pair keeps the view unambiguous when the same name was added at
// different prices.
func (c Cart) Aggregate() []AggregateLine {
	index := make(map[aggregateKey]int, len(c.Items))
	lines := make([]AggregateLine, 0, len(c.Items))

	for _, item := range c.Items {
		key := aggregateKey{name: item.Name, price: item.Price}
		if i, ok := index[key]; ok {
			lines[i].Quantity++
			lines[i].Subtotal += item.Price
			continue
		}
		index[key] = len(lines)
		lines = append(lines, AggregateLine{
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  1,
			Subtotal:  item.Price,
		})
	}

	return lines
}
