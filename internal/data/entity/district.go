package entity

// DroppingPoint is a named drop-off location inside a district. Price is
// the surcharge added to the base fare when a passenger chooses it.
type DroppingPoint struct {
	Name  string  `json:"name"`
	Price float64 `json:"price,omitempty"`
}

type District struct {
	Base
	Name           string          `db:"name"`
	DroppingPoints []DroppingPoint `db:"dropping_points"`
	Description    string          `db:"description"`
	IsActive       bool            `db:"is_active"`
}

// DroppingPointByName returns the dropping point with the exact name, or nil.
func (d *District) DroppingPointByName(name string) *DroppingPoint {
	for i := range d.DroppingPoints {
		if d.DroppingPoints[i].Name == name {
			return &d.DroppingPoints[i]
		}
	}
	return nil
}
