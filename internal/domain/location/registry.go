// Package location defines the fixed registry of restaurant locations.
// Statement filenames are validated against it and read-side aggregation is
// tagged with its regions.
package location

import "sort"

// Operational statuses
const (
	StatusOpen       = "Open"
	StatusComingSoon = "Coming soon"
)

// Location describes one restaurant location
type Location struct {
	Code   string
	Name   string
	City   string
	Status string
	Region string
}

// registry maps short codes to location details. Codes are stable identifiers
// and must never change once a statement references them.
var registry = map[string]Location{
	"ANN":  {Code: "ANN", Name: "Annapolis", City: "Annapolis, MD", Status: StatusOpen, Region: "Mid-Atlantic"},
	"ARL":  {Code: "ARL", Name: "Arlington – Village at Shirlington", City: "Arlington, VA", Status: StatusOpen, Region: "Virginia"},
	"AUS":  {Code: "AUS", Name: "Austin", City: "Austin, TX", Status: StatusOpen, Region: "Texas"},
	"BEL":  {Code: "BEL", Name: "Belleair Bluffs", City: "Belleair Bluffs, FL", Status: StatusOpen, Region: "Southwest Florida"},
	"BVS":  {Code: "BVS", Name: "Belvedere Square", City: "Baltimore, MD", Status: StatusOpen, Region: "Mid-Atlantic"},
	"CAR":  {Code: "CAR", Name: "Cary – Waverly Place", City: "Cary, NC", Status: StatusOpen, Region: "Carolinas"},
	"CHS":  {Code: "CHS", Name: "Charleston", City: "Charleston, SC", Status: StatusOpen, Region: "Carolinas"},
	"CLT":  {Code: "CLT", Name: "Charlotte", City: "Charlotte, NC", Status: StatusOpen, Region: "Carolinas"},
	"COS":  {Code: "COS", Name: "Colorado Springs", City: "Colorado Springs, CO", Status: StatusOpen, Region: "Colorado"},
	"DAL":  {Code: "DAL", Name: "Dallas", City: "Dallas, TX", Status: StatusComingSoon, Region: "Texas"},
	"DEN":  {Code: "DEN", Name: "Denver", City: "Denver, CO", Status: StatusOpen, Region: "Colorado"},
	"DUP":  {Code: "DUP", Name: "Dupont Circle", City: "Washington, DC", Status: StatusOpen, Region: "Mid-Atlantic"},
	"FAL":  {Code: "FAL", Name: "Falls Church", City: "Falls Church, VA", Status: StatusOpen, Region: "Virginia"},
	"FER":  {Code: "FER", Name: "Fernandina Beach", City: "Fernandina Beach, FL", Status: StatusOpen, Region: "Florida"},
	"FMD":  {Code: "FMD", Name: "Fort Myers – Downtown", City: "Fort Myers, FL", Status: StatusOpen, Region: "Southwest Florida"},
	"FMD2": {Code: "FMD2", Name: "Fort Myers – Daniels Parkway", City: "Fort Myers, FL", Status: StatusComingSoon, Region: "Southwest Florida"},
	"GAI":  {Code: "GAI", Name: "Gaithersburg – Rio Lakefront", City: "Gaithersburg, MD", Status: StatusOpen, Region: "Mid-Atlantic"},
	"HAR":  {Code: "HAR", Name: "Harborplace", City: "Baltimore, MD", Status: StatusOpen, Region: "Mid-Atlantic"},
	"LON":  {Code: "LON", Name: "Long Branch", City: "Long Branch, NJ", Status: StatusOpen, Region: "Northeast"},
	"MOA":  {Code: "MOA", Name: "Mall of America", City: "Bloomington, MN", Status: StatusOpen, Region: "Midwest"},
	"MAR":  {Code: "MAR", Name: "Marina Village", City: "Fort Lauderdale, FL", Status: StatusOpen, Region: "Florida"},
	"MID":  {Code: "MID", Name: "Midlothian", City: "Midlothian, VA", Status: StatusOpen, Region: "Virginia"},
	"MIL":  {Code: "MIL", Name: "Milan", City: "Milan, Italy", Status: StatusOpen, Region: "International"},
	"NAT":  {Code: "NAT", Name: "National Harbor", City: "National Harbor, MD", Status: StatusOpen, Region: "Mid-Atlantic"},
	"PAN":  {Code: "PAN", Name: "Panama City Beach", City: "Panama City Beach, FL", Status: StatusOpen, Region: "Florida"},
	"REH":  {Code: "REH", Name: "Rehoboth Beach", City: "Rehoboth Beach, DE", Status: StatusOpen, Region: "Mid-Atlantic"},
	"RES":  {Code: "RES", Name: "Reston", City: "Reston, VA", Status: StatusOpen, Region: "Virginia"},
	"SCO":  {Code: "SCO", Name: "Scottsdale", City: "Scottsdale, AZ", Status: StatusOpen, Region: "Arizona"},
	"COC":  {Code: "COC", Name: "Coconut Point", City: "Estero, FL", Status: StatusComingSoon, Region: "Southwest Florida"},
	"FLO":  {Code: "FLO", Name: "Florence", City: "Florence, Italy", Status: StatusComingSoon, Region: "International"},
}

// ByCode looks up a location by its short code.
func ByCode(code string) (Location, bool) {
	loc, ok := registry[code]
	return loc, ok
}

// IsKnown reports whether the code belongs to the registry.
func IsKnown(code string) bool {
	_, ok := registry[code]
	return ok
}

// All returns every registered location ordered by code.
func All() []Location {
	locations := make([]Location, 0, len(registry))
	for _, loc := range registry {
		locations = append(locations, loc)
	}
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].Code < locations[j].Code
	})
	return locations
}
