package model

// Division is one of the eight administrative divisions.
type Division struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	BnName string `json:"bn_name" db:"bn_name"`
}

// District belongs to exactly one division. Name is unique within a
// division, not globally.
type District struct {
	ID         int64  `json:"id" db:"id"`
	DivisionID int64  `json:"division_id" db:"division_id"`
	Name       string `json:"name" db:"name"`
	BnName     string `json:"bn_name" db:"bn_name"`
}
