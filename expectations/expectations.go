// Package expectations loads the city expectations table (spec.md §6): a
// CSV sheet of one row per city, naming its expected station/line/
// interchange counts, bounding box, and permitted networks. Ported from
// City.__init__'s row parsing and download_cities in
// original_source/subway_structure.py.
package expectations

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/subway-topology-validator/geo"
	"github.com/theoremus-urban-solutions/subway-topology-validator/logging"
	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
)

// spreadsheetURL is the canonical published expectations sheet, exported
// as a CSV download (ported from download_cities's SPREADSHEET_ID).
const spreadsheetURL = "https://docs.google.com/spreadsheets/d/1-UHDzfBwHdeyFxgC5cE_MaNQotF3-Y0r1nW9IwpIEj8/export?format=csv"

// ParseRow converts one CSV row into an Expectations record (spec.md §6's
// 9-column layout: name, country, continent, num_stations, num_lines,
// num_light_lines, num_interchanges, bbox, networks).
func ParseRow(row []string) (model.Expectations, error) {
	if len(row) < 8 {
		return model.Expectations{}, fmt.Errorf("expectations row has %d columns, need at least 8", len(row))
	}
	exp := model.Expectations{
		Name:      strings.TrimSpace(row[0]),
		Country:   row[1],
		Continent: row[2],
	}
	var err error
	if exp.NumStations, err = atoiOrZero(row[3]); err != nil {
		return model.Expectations{}, fmt.Errorf("num_stations: %w", err)
	}
	if exp.NumLines, err = atoiOrZero(row[4]); err != nil {
		return model.Expectations{}, fmt.Errorf("num_lines: %w", err)
	}
	if exp.NumLightLines, err = atoiOrZero(row[5]); err != nil {
		return model.Expectations{}, fmt.Errorf("num_light_lines: %w", err)
	}
	if exp.NumInterchanges, err = atoiOrZero(row[6]); err != nil {
		return model.Expectations{}, fmt.Errorf("num_interchanges: %w", err)
	}

	bbox := strings.Split(row[7], ",")
	if len(bbox) == 4 {
		minLon, e1 := strconv.ParseFloat(strings.TrimSpace(bbox[0]), 64)
		minLat, e2 := strconv.ParseFloat(strings.TrimSpace(bbox[1]), 64)
		maxLon, e3 := strconv.ParseFloat(strings.TrimSpace(bbox[2]), 64)
		maxLat, e4 := strconv.ParseFloat(strings.TrimSpace(bbox[3]), 64)
		if e1 != nil || e2 != nil || e3 != nil || e4 != nil {
			return model.Expectations{}, fmt.Errorf("malformed bbox %q", row[7])
		}
		exp.BBox = geo.NewBound(minLon, minLat, maxLon, maxLat)
		exp.HasBBox = true
	}

	exp.Networks = make(map[string]bool)
	if len(row) > 8 {
		for _, n := range strings.Split(row[8], ";") {
			n = strings.TrimSpace(n)
			if n != "" {
				exp.Networks[n] = true
			}
		}
	}
	return exp, nil
}

func atoiOrZero(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// Load reads every city row from r, skipping the header line and
// reporting — via log — a duplicate city name the way download_cities
// warns on one (a data-entry mistake in the sheet, not a fatal error).
func Load(r io.Reader, log *logging.Logger) ([]model.Expectations, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	if log == nil {
		log = logging.NewDefault()
	}

	seen := make(map[string]bool)
	var out []model.Expectations
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		if len(row) <= 7 || row[7] == "" {
			continue
		}
		exp, err := ParseRow(row)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSpace(exp.Name)
		if seen[name] {
			log.Warn("duplicate city name in the expectations sheet", "city", name)
		}
		seen[name] = true
		out = append(out, exp)
	}
	return out, nil
}

// Fetch downloads the published expectations sheet over HTTP and parses
// it with Load.
func Fetch(log *logging.Logger) ([]model.Expectations, error) {
	resp, err := http.Get(spreadsheetURL)
	if err != nil {
		return nil, fmt.Errorf("fetching expectations sheet: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching expectations sheet: HTTP %d", resp.StatusCode)
	}
	return Load(resp.Body, log)
}
