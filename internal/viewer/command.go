package viewer

import (
	"fmt"
	"strconv"
	"strings"
)

const Help = `commands:
  name <text>       filter by name (empty clears)
  location <text>   filter by location (empty clears)
  sort <column>     toggle sort: name, age, phone, location, date, time
  first | prev | next | last
  page <n>          go to page n
  refresh           fetch again
  help
  quit`

// Execute runs one command line. msg is text to show the user, and quit is
// true for "quit"/"exit".
func (v *Viewer) Execute(line string) (msg string, quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false, nil
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "name":
		v.SetNameFilter(arg)
	case "location", "loc":
		v.SetLocationFilter(arg)
	case "sort":
		return "", false, v.ToggleSort(strings.ToLower(arg))
	case "first", "<<":
		v.FirstPage()
	case "prev", "<":
		v.PreviousPage()
	case "next", ">":
		v.NextPage()
	case "last", ">>":
		v.LastPage()
	case "page":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return "", false, fmt.Errorf("page wants a number from 1, got %q", arg)
		}
		v.GotoPage(n - 1)
	case "refresh":
		v.Refresh()
	case "help", "?":
		return Help, false, nil
	case "quit", "exit", "q":
		return "", true, nil
	default:
		return "", false, fmt.Errorf("unknown command %q, try help", cmd)
	}
	return "", false, nil
}
