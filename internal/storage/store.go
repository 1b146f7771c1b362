// Package storage persists completed runs for later plotting and export.
// Persistence is strictly a caller concern; the engine itself never touches
// the filesystem.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/venturesim/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata records the inputs and terminal outcome of one stored run.
type RunMetadata struct {
	ID               string             `json:"id"`
	Timestamp        time.Time          `json:"timestamp"`
	Seed             int64              `json:"seed"`
	Horizon          int                `json:"horizon"`
	Ambition         float64            `json:"ambition"`
	Skill            float64            `json:"skill"`
	SelfRegulation   float64            `json:"selfRegulation"`
	Dynamism         float64            `json:"dynamism"`
	Coefficients     map[string]float64 `json:"coefficients"`
	FinalPerformance float64            `json:"finalPerformance"`
	FinalWellbeing   float64            `json:"finalWellbeing"`
	FinalEffort      float64            `json:"finalEffort"`
}

var trajectoryHeader = []string{
	"period", "motivation", "strain", "cumulative_effort", "performance",
	"resources", "recovery", "challenge", "hindrance", "effort",
	"advance", "setback", "wellbeing",
}

func (s *Store) Save(params sim.Parameters, horizon int, seed int64, trajectory []sim.Point) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Timestamp:      time.Now(),
		Seed:           seed,
		Horizon:        horizon,
		Ambition:       params.Ambition,
		Skill:          params.Skill,
		SelfRegulation: params.SelfRegulation,
		Dynamism:       params.Dynamism,
		Coefficients:   params.Coeffs.Map(),
	}
	if len(trajectory) > 0 {
		last := trajectory[len(trajectory)-1]
		meta.FinalPerformance = last.Performance
		meta.FinalWellbeing = last.Wellbeing
		meta.FinalEffort = last.CumulativeEffort
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(trajectoryHeader); err != nil {
		return "", err
	}
	for _, p := range trajectory {
		if err := w.Write(pointRow(p)); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func pointRow(p sim.Point) []string {
	fields := []float64{
		p.Motivation, p.Strain, p.CumulativeEffort, p.Performance,
		p.Resources, p.Recovery, p.Challenge, p.Hindrance, p.Effort,
		p.Advance, p.Setback, p.Wellbeing,
	}
	row := make([]string, 0, len(fields)+1)
	row = append(row, strconv.Itoa(p.Period))
	for _, v := range fields {
		row = append(row, strconv.FormatFloat(v, 'f', 3, 64))
	}
	return row
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadTrajectory(runID string) ([]sim.Point, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []sim.Point{}, nil
	}

	points := make([]sim.Point, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(trajectoryHeader) {
			continue
		}

		period, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}

		vals := make([]float64, 0, len(record)-1)
		ok := true
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
			vals = append(vals, v)
		}
		if !ok {
			continue
		}

		points = append(points, sim.Point{
			Period:           period,
			Motivation:       vals[0],
			Strain:           vals[1],
			CumulativeEffort: vals[2],
			Performance:      vals[3],
			Resources:        vals[4],
			Recovery:         vals[5],
			Challenge:        vals[6],
			Hindrance:        vals[7],
			Effort:           vals[8],
			Advance:          vals[9],
			Setback:          vals[10],
			Wellbeing:        vals[11],
		})
	}

	return points, nil
}
