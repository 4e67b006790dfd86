// internal/model/customer.go
package model

import "time"

type Customer struct {
	Sno          int       `db:"sno" json:"sno"`
	CustomerName string    `db:"customer_name" json:"customer_name"`
	Age          int       `db:"age" json:"age"`
	Phone        string    `db:"phone" json:"phone"`
	Location     string    `db:"location" json:"location"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// CustomerFilter holds the optional substring filters. Empty means no filter.
type CustomerFilter struct {
	Name     string
	Location string
}
