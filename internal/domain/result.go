package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// GreenStatus is the site endpoint's green-hosting verdict. The service
// answers with a boolean, or the string "unknown" when it cannot tell.
type GreenStatus int

const (
	GreenUnknown GreenStatus = iota
	GreenFalse
	GreenTrue
)

const greenUnknownLiteral = "unknown"

func (g GreenStatus) String() string {
	switch g {
	case GreenTrue:
		return "true"
	case GreenFalse:
		return "false"
	default:
		return greenUnknownLiteral
	}
}

func (g GreenStatus) value() any {
	switch g {
	case GreenTrue:
		return true
	case GreenFalse:
		return false
	default:
		return greenUnknownLiteral
	}
}

// MarshalJSON writes the status back in the service's own shape.
func (g GreenStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.value())
}

// UnmarshalJSON accepts true, false, null and "unknown".
func (g *GreenStatus) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true":
		*g = GreenTrue
	case "false":
		*g = GreenFalse
	case "null", `"` + greenUnknownLiteral + `"`:
		*g = GreenUnknown
	default:
		return fmt.Errorf("invalid green status %s", data)
	}
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (g GreenStatus) MarshalYAML() (interface{}, error) {
	return g.value(), nil
}

// Emission is the co2 estimate for a single energy source.
type Emission struct {
	Grams  float64 `json:"grams" yaml:"grams"`
	Litres float64 `json:"litres" yaml:"litres"`
}

// CO2 splits the estimate between grid and renewable energy.
type CO2 struct {
	Grid      Emission `json:"grid" yaml:"grid"`
	Renewable Emission `json:"renewable" yaml:"renewable"`
}

// Statistics is shared by both endpoints.
type Statistics struct {
	AdjustedBy float64 `json:"adjustedBy" yaml:"adjustedBy"`
	Energy     float64 `json:"energy" yaml:"energy"`
	CO2        CO2     `json:"co2" yaml:"co2"`
}

// SiteResult is the /site response body.
type SiteResult struct {
	URL         string      `json:"url" yaml:"url"`
	Green       GreenStatus `json:"green" yaml:"green"`
	Bytes       int64       `json:"bytes" yaml:"bytes"`
	CleanerThan float64     `json:"cleanerThan" yaml:"cleanerThan"`
	Statistics  Statistics  `json:"statistics" yaml:"statistics"`
}

// DataResult is the /data response body.
type DataResult struct {
	CleanerThan float64    `json:"cleanerThan" yaml:"cleanerThan"`
	Statistics  Statistics `json:"statistics" yaml:"statistics"`
}

// ShortCO2 holds the rounded gram values.
type ShortCO2 struct {
	Grid      string `json:"grid" yaml:"grid"`
	Renewable string `json:"renewable" yaml:"renewable"`
}

// ShortSite is the condensed view of a SiteResult.
type ShortSite struct {
	Green        GreenStatus `json:"green" yaml:"green"`
	Size         string      `json:"size" yaml:"size"`
	CleanerThan  string      `json:"cleanerThan" yaml:"cleanerThan"`
	EnergyPrLoad string      `json:"energy_pr_load" yaml:"energy_pr_load"`
	CO2          ShortCO2    `json:"co2" yaml:"co2"`
}

// ShortData is the condensed view of a DataResult.
type ShortData struct {
	CleanerThan  string   `json:"cleanerThan" yaml:"cleanerThan"`
	EnergyPrLoad string   `json:"energy_pr_load" yaml:"energy_pr_load"`
	CO2          ShortCO2 `json:"co2" yaml:"co2"`
}

// Short condenses the site result.
func (r SiteResult) Short() ShortSite {
	return ShortSite{
		Green:        r.Green,
		Size:         FormatSize(r.Bytes),
		CleanerThan:  FormatPercent(r.CleanerThan),
		EnergyPrLoad: FormatEnergy(r.Statistics.Energy),
		CO2:          r.Statistics.shortCO2(),
	}
}

// Short condenses the data result. Size and green are not part of the
// /data response, so they are omitted.
func (r DataResult) Short() ShortData {
	return ShortData{
		CleanerThan:  FormatPercent(r.CleanerThan),
		EnergyPrLoad: FormatEnergy(r.Statistics.Energy),
		CO2:          r.Statistics.shortCO2(),
	}
}

func (s Statistics) shortCO2() ShortCO2 {
	return ShortCO2{
		Grid:      FormatGrams(s.CO2.Grid.Grams),
		Renewable: FormatGrams(s.CO2.Renewable.Grams),
	}
}
