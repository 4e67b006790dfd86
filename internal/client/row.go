package client

import (
	"time"

	"github.com/unclebandit/customer-viewer/internal/model"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Row is a customer plus the display-only date and time taken from CreatedAt.
type Row struct {
	model.Customer
	Date string
	Time string
}

// Split derives the date and time columns in loc.
func Split(c model.Customer, loc *time.Location) Row {
	t := c.CreatedAt.In(loc)
	return Row{
		Customer: c,
		Date:     t.Format(DateLayout),
		Time:     t.Format(TimeLayout),
	}
}

func SplitAll(customers []model.Customer, loc *time.Location) []Row {
	rows := make([]Row, len(customers))
	for i, c := range customers {
		rows[i] = Split(c, loc)
	}
	return rows
}
