package dvsa

import (
	"math"
	"strconv"
	"strings"

	"github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/types"
)

// Columns is the positional schema of the practical test centre CSV. The
// header row is not used to locate columns, so a reordered upstream file will
// be mis-read.
var Columns = []string{
	"name",
	"address1",
	"address2",
	"city",
	"county",
	"postcode",
	"latitude",
	"longitude",
}

const (
	colName = iota
	colAddress1
	colAddress2
	colCity
	colCounty
	colPostcode
	colLatitude
	colLongitude
)

// minFields is the number of fields a row needs before it is considered;
// longitude may be missing and then defaults to 0, which drops the row.
const minFields = colLatitude + 1

// Catalog is the result of parsing a CSV body
type Catalog struct {
	Header  []string
	Centres []types.Centre
	Skipped int
}

// ParseCentres parses the catalog CSV and returns the usable centres
func ParseCentres(body string) []types.Centre {
	return Parse(body).Centres
}

// Parse splits body on newlines, drops the header and converts every
// remaining line into a Centre. Rows with too few fields, or without a name,
// postcode or non-zero coordinates are counted in Skipped.
func Parse(body string) Catalog {
	lines := strings.Split(body, "\n")

	catalog := Catalog{Centres: []types.Centre{}}

	for _, h := range strings.Split(lines[0], ",") {
		catalog.Header = append(catalog.Header, strings.ReplaceAll(h, `"`, ""))
	}

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		centre, ok := parseRow(splitLine(line))
		if !ok {
			catalog.Skipped++
			continue
		}
		catalog.Centres = append(catalog.Centres, centre)
	}

	return catalog
}

func parseRow(fields []string) (types.Centre, bool) {
	if len(fields) < minFields {
		return types.Centre{}, false
	}

	for i := range fields {
		fields[i] = strings.ReplaceAll(fields[i], `"`, "")
	}

	lat := parseCoordinate(fields[colLatitude])
	var lon float64
	if len(fields) > colLongitude {
		lon = parseCoordinate(fields[colLongitude])
	}

	name := fields[colName]
	postcode := fields[colPostcode]

	// 0 doubles as "missing", so a centre genuinely on the equator or the
	// prime meridian is dropped too.
	if name == "" || lat == 0 || lon == 0 || postcode == "" {
		return types.Centre{}, false
	}

	return types.Centre{
		Name:      name,
		Address:   joinAddress(fields[colAddress1], fields[colAddress2], fields[colCity], fields[colCounty]),
		Postcode:  postcode,
		Latitude:  lat,
		Longitude: lon,
	}, true
}

// splitLine tokenizes a single CSV line. Every double quote toggles the
// quoted state and is dropped; commas separate fields only outside quotes.
// Doubled quotes ("") are not treated as an escape.
func splitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

func joinAddress(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// parseCoordinate reads the longest leading decimal number in s, so
// "51.5abc" yields 51.5. Anything without a leading number, or NaN, yields 0.
func parseCoordinate(s string) float64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(v) {
			return 0
		}
		return v
	}

	end := numberPrefixLen(s)
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// numberPrefixLen returns the length of the leading [sign]digits[.digits][e[sign]digits] run
func numberPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}

	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
