// Package csv decodes location catalogs stored as CSV.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/nearby"
)

// Columns lists the header fields a catalog file must provide.
var Columns = []string{"id", "name", "country", "latitude", "longitude"}

// Reader reads locations from a CSV catalog with a header row.
// Columns may appear in any order; unknown columns are ignored.
type Reader struct {
	r *csv.Reader
}

// NewReader creates a new Reader reading from r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	return &Reader{r: cr}
}

// ReadAll reads every record and returns the decoded locations in file
// order. Each location is validated; the first invalid row fails the read.
func (r *Reader) ReadAll() ([]*nearby.Location, error) {
	header, err := r.r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nearby.Errorf(nearby.EINVALID, "catalog is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var locations []*nearby.Location
	for {
		record, err := r.r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		line, _ := r.r.FieldPos(0)
		loc, err := decode(record, index)
		if err != nil {
			return nil, nearby.Errorf(nearby.EINVALID, "line %d: %s", line, nearby.ErrorMessage(err))
		}
		if err := loc.Validate(); err != nil {
			return nil, nearby.Errorf(nearby.EINVALID, "line %d: %s", line, nearby.ErrorMessage(err))
		}
		locations = append(locations, loc)
	}

	return locations, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range Columns {
		if _, ok := index[name]; !ok {
			return nil, nearby.Errorf(nearby.EINVALID, "catalog header missing column %q", name)
		}
	}
	return index, nil
}

func decode(record []string, index map[string]int) (*nearby.Location, error) {
	id, err := strconv.Atoi(strings.TrimSpace(record[index["id"]]))
	if err != nil {
		return nil, nearby.Errorf(nearby.EINVALID, "invalid id %q", record[index["id"]])
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(record[index["latitude"]]), 64)
	if err != nil {
		return nil, nearby.Errorf(nearby.EINVALID, "invalid latitude %q", record[index["latitude"]])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(record[index["longitude"]]), 64)
	if err != nil {
		return nil, nearby.Errorf(nearby.EINVALID, "invalid longitude %q", record[index["longitude"]])
	}

	return &nearby.Location{
		ID:      id,
		Name:    record[index["name"]],
		Country: record[index["country"]],
		Coordinates: nearby.Coordinates{
			Latitude:  lat,
			Longitude: lon,
		},
	}, nil
}
