package viewer

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/unclebandit/customer-viewer/internal/client"
	"github.com/unclebandit/customer-viewer/internal/table"
)

func byString(get func(client.Row) string) func(a, b client.Row) int {
	return func(a, b client.Row) int { return strings.Compare(get(a), get(b)) }
}

// Columns are the displayed customer columns, in display order.
var Columns = []table.Column[client.Row]{
	{
		Key:     "name",
		Header:  "Name",
		Value:   func(r client.Row) string { return r.CustomerName },
		Compare: byString(func(r client.Row) string { return r.CustomerName }),
	},
	{
		Key:     "age",
		Header:  "Age",
		Value:   func(r client.Row) string { return strconv.Itoa(r.Age) },
		Compare: func(a, b client.Row) int { return cmp.Compare(a.Age, b.Age) },
	},
	{
		Key:     "phone",
		Header:  "Phone",
		Value:   func(r client.Row) string { return r.Phone },
		Compare: byString(func(r client.Row) string { return r.Phone }),
	},
	{
		Key:     "location",
		Header:  "Location",
		Value:   func(r client.Row) string { return r.Location },
		Compare: byString(func(r client.Row) string { return r.Location }),
	},
	{
		Key:     "date",
		Header:  "Date",
		Value:   func(r client.Row) string { return r.Date },
		Compare: byString(func(r client.Row) string { return r.Date }),
	},
	{
		Key:     "time",
		Header:  "Time",
		Value:   func(r client.Row) string { return r.Time },
		Compare: byString(func(r client.Row) string { return r.Time }),
	},
}
