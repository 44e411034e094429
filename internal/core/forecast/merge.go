// Package forecast builds the multi-city forecast trend chart.
package forecast

import (
	"encoding/json"
	"fmt"
	"sort"

	"weatherdash.app/internal/core/weather"
)

// CityForecast pairs a city with the forecast days fetched for it
type CityForecast struct {
	City weather.City
	Days []weather.ForecastDay
}

// dateKey is the key of the date in a serialized row; no city label may use it
const dateKey = "date"

// Row is one chart point: the daily max temperature of every charted city on
// Date. A city without data for the date maps to nil.
type Row struct {
	Date  string
	Temps map[string]*float64
}

// MarshalJSON flattens the row into {"date": ..., "<city>": value|null}
func (r Row) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(r.Temps)+1)
	for label, temp := range r.Temps {
		flat[label] = temp
	}
	flat[dateKey] = r.Date
	return json.Marshal(flat)
}

// Series is the merged chart data set
type Series struct {
	Cities []string `json:"cities"`
	Rows   []Row    `json:"rows"`
}

// IsEmpty reports whether there is nothing to chart
func (s Series) IsEmpty() bool {
	return len(s.Rows) == 0
}

// Clone returns a deep copy
func (s Series) Clone() Series {
	clone := Series{
		Cities: append([]string{}, s.Cities...),
		Rows:   make([]Row, len(s.Rows)),
	}
	for i, row := range s.Rows {
		temps := make(map[string]*float64, len(row.Temps))
		for label, temp := range row.Temps {
			if temp != nil {
				v := *temp
				temp = &v
			}
			temps[label] = temp
		}
		clone.Rows[i] = Row{Date: row.Date, Temps: temps}
	}
	return clone
}

// Merge joins per-city forecasts into one series keyed by date. Dates are the
// sorted set of every forecast_date seen; every row carries an entry for every
// city, taken from the first matching day.
func Merge(forecasts []CityForecast) Series {
	labels := Labels(cityList(forecasts))

	seen := make(map[string]struct{})
	var dates []string
	for _, f := range forecasts {
		for _, day := range f.Days {
			if _, ok := seen[day.ForecastDate]; ok {
				continue
			}
			seen[day.ForecastDate] = struct{}{}
			dates = append(dates, day.ForecastDate)
		}
	}
	sort.Strings(dates)

	series := Series{
		Cities: labels,
		Rows:   make([]Row, 0, len(dates)),
	}
	for _, date := range dates {
		row := Row{Date: date, Temps: make(map[string]*float64, len(forecasts))}
		for i, f := range forecasts {
			row.Temps[labels[i]] = maxTemperatureOn(f.Days, date)
		}
		series.Rows = append(series.Rows, row)
	}

	return series
}

// Labels returns the chart label of each city, in order. Cities are labelled by
// name; cities sharing a name, or named like the row date key, fall back to
// "Name, CC", then to "Name, CC (id)".
func Labels(cities []weather.City) []string {
	byName := make(map[string]int)
	byDisplay := make(map[string]int)
	for _, city := range cities {
		byName[city.Name]++
		byDisplay[city.String()]++
	}

	labels := make([]string, len(cities))
	for i, city := range cities {
		switch {
		case byName[city.Name] == 1 && city.Name != dateKey:
			labels[i] = city.Name
		case byDisplay[city.String()] == 1:
			labels[i] = city.String()
		default:
			labels[i] = fmt.Sprintf("%s (%d)", city.String(), city.ID)
		}
	}
	return labels
}

func cityList(forecasts []CityForecast) []weather.City {
	cities := make([]weather.City, len(forecasts))
	for i, f := range forecasts {
		cities[i] = f.City
	}
	return cities
}

func maxTemperatureOn(days []weather.ForecastDay, date string) *float64 {
	for _, day := range days {
		if day.ForecastDate == date {
			temp := day.TemperatureMax
			return &temp
		}
	}
	return nil
}
