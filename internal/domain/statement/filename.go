package statement

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/swhalen98/MasonsDBCC/internal/domain/location"
)

// Accepted filename shapes:
//
//	YYYY-MM_CODE.pdf
//	YYYY-MM_CODE_{IS|BS|CF|ALL}.pdf
//	manual_entry_YYYY-MM_CODE.csv
var (
	pdfNameRe    = regexp.MustCompile(`^(\d{4})-(\d{2})_([A-Z0-9]+)(?:_(IS|BS|CF|ALL))?\.pdf$`)
	manualNameRe = regexp.MustCompile(`^manual_entry_(\d{4})-(\d{2})_([A-Z0-9]+)\.csv$`)
)

// ResolveFilename parses a statement file name into its period, location and
// statement type. It is a pure function: no filesystem access. Returns
// ErrInvalidFilename when the name matches no convention and
// ErrUnknownLocation when the code is not registered.
func ResolveFilename(name string) (*Metadata, error) {
	if m := pdfNameRe.FindStringSubmatch(name); m != nil {
		statementType := TypeAll
		if m[4] != "" {
			statementType = Type(m[4])
		}
		return newMetadata(name, m[1], m[2], m[3], statementType, false)
	}

	if m := manualNameRe.FindStringSubmatch(name); m != nil {
		return newMetadata(name, m[1], m[2], m[3], TypeAll, true)
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidFilename, name)
}

func newMetadata(name, year, month, code string, t Type, manual bool) (*Metadata, error) {
	if !location.IsKnown(code) {
		return nil, fmt.Errorf("%w: %s in %s", ErrUnknownLocation, code, name)
	}

	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	if m < 1 || m > 12 {
		return nil, fmt.Errorf("%w: month %d out of range in %s", ErrInvalidFilename, m, name)
	}

	return &Metadata{
		Year:         y,
		Month:        m,
		LocationCode: code,
		Type:         t,
		FileName:     name,
		ManualEntry:  manual,
	}, nil
}
