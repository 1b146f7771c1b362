package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/venturesim/internal/sim"
)

func testTrajectory() []sim.Point {
	return []sim.Point{
		{Period: 0, Resources: 0.5, Recovery: 0.752, Hindrance: 0.496, Wellbeing: 0.128},
		{Period: 5, Motivation: 1.895, Strain: 0.037, CumulativeEffort: 2.666, Performance: 0.032, Wellbeing: 2.39},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	params := sim.DefaultParameters()
	runID, err := st.Save(params, 500, 42, testTrajectory())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.Horizon != 500 {
		t.Errorf("expected horizon 500, got %d", meta.Horizon)
	}
	if meta.Ambition != 0.5 {
		t.Errorf("expected ambition 0.5, got %f", meta.Ambition)
	}
	if meta.Coefficients["var1"] != 1.0 {
		t.Errorf("expected var1 1.0, got %f", meta.Coefficients["var1"])
	}
	if meta.FinalWellbeing != 2.39 {
		t.Errorf("expected final wellbeing 2.39, got %f", meta.FinalWellbeing)
	}
	if meta.FinalEffort != 2.666 {
		t.Errorf("expected final effort 2.666, got %f", meta.FinalEffort)
	}
}

func TestStoreTrajectoryRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	want := testTrajectory()
	runID, err := st.Save(sim.DefaultParameters(), 500, 42, want)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("load trajectory failed: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		// Recorded values carry 3 decimals, so the CSV round trip is exact.
		if got[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(sim.DefaultParameters(), 100, 7, testTrajectory()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(sim.DefaultParameters(), 100, 7, testTrajectory())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(dir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "trajectory.csv")); os.IsNotExist(err) {
		t.Error("trajectory.csv not created")
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	meta := RunMetadata{ID: "run_1", Seed: 42, Horizon: 500}

	if err := ExportJSON(&buf, meta, testTrajectory()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if data.Meta.ID != "run_1" {
		t.Errorf("expected id run_1, got %s", data.Meta.ID)
	}
	if len(data.Points) != 2 {
		t.Errorf("expected 2 points, got %d", len(data.Points))
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, testTrajectory()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "period,motivation,strain") {
		t.Errorf("unexpected header: %s", lines[0])
	}
}
