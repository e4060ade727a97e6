package fireeagle

import (
	"strconv"
	"strings"

	"github.com/s0up4200/fireeagle-go/fireeagle/xmldoc"
)

// Location is the simplified view of a query-location result, extracted
// from the ResultSet payload for display and filtering.
type Location struct {
	City       string
	State      string
	PostalCode string
	Country    string
	Lat        float64
	Lng        float64
	UpdateTime string
}

// LocationFromDocument extracts a Location from a successful query
// response. Missing fields stay at their zero values.
func LocationFromDocument(doc xmldoc.Document) Location {
	var loc Location
	loc.City = resultText(doc, "city")
	loc.State = resultText(doc, "state")
	loc.PostalCode = resultText(doc, "zip")
	loc.Country = resultText(doc, "country")
	loc.UpdateTime = resultText(doc, "updatetime")
	loc.Lat, _ = strconv.ParseFloat(resultText(doc, "latitude"), 64)
	loc.Lng, _ = strconv.ParseFloat(resultText(doc, "longitude"), 64)
	return loc
}

func resultText(doc xmldoc.Document, field string) string {
	s, _ := doc.Text("/ResultSet/Result/" + field)
	return strings.TrimSpace(s)
}
