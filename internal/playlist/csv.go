// Package playlist imports song titles from playlist exports. The engine
// itself does no I/O; this is the import collaborator feeding it a pool.
package playlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// trackNameColumn is the header Exportify uses for song titles.
const trackNameColumn = "Track Name"

// ErrNoTracks indicates the export parsed cleanly but held no track names.
var ErrNoTracks = errors.New("no track names found in csv")

// ParseExportifyCSV extracts track names from an Exportify playlist export.
// Blank cells are skipped; rows may have varying widths.
func ParseExportifyCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	col := -1
	for i, name := range header {
		if strings.TrimSpace(name) == trackNameColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("csv has no %q column (columns: %s)",
			trackNameColumn, strings.Join(header, ", "))
	}

	var tracks []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		if col >= len(rec) {
			continue
		}
		if name := strings.TrimSpace(rec[col]); name != "" {
			tracks = append(tracks, name)
		}
	}

	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}
	return tracks, nil
}
