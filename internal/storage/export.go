package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/san-kum/venturesim/internal/sim"
)

// ExportData is the JSON shape of a full run export.
type ExportData struct {
	Meta   RunMetadata `json:"meta"`
	Points []sim.Point `json:"points"`
}

// ExportJSON writes a stored run, metadata plus trajectory, to w.
func ExportJSON(w io.Writer, meta RunMetadata, points []sim.Point) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Meta: meta, Points: points})
}

// ExportCSV writes a trajectory to w in the stored CSV format.
func ExportCSV(w io.Writer, points []sim.Point) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(trajectoryHeader); err != nil {
		return err
	}
	for _, p := range points {
		if err := cw.Write(pointRow(p)); err != nil {
			return err
		}
	}
	return nil
}
