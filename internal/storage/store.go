package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/surfviz/internal/grid"
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

type RunMetadata struct {
	ID         string    `json:"id"`
	Formula    string    `json:"formula"`
	Timestamp  time.Time `json:"timestamp"`
	GridSize   int       `json:"grid_size"`
	TimeFactor float64   `json:"time_factor"`
	MinHeight  float64   `json:"min_height"`
	MaxHeight  float64   `json:"max_height"`
}

// Save writes one evaluated field as a run directory holding
// metadata.json and field.csv (one x,y,z row per grid point).
func (s *Store) Save(formulaSrc string, field *grid.Field) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	lo, hi := field.MinMax()
	meta := RunMetadata{
		ID:         runID,
		Formula:    formulaSrc,
		Timestamp:  time.Now(),
		GridSize:   field.N,
		TimeFactor: field.Time,
		MinHeight:  lo,
		MaxHeight:  hi,
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

	csvFile, err := os.Create(filepath.Join(runDir, "field.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeFieldCSV(csvFile, field); err != nil {
		return "", err
	}
	return runID, nil
}

func writeFieldCSV(out io.Writer, field *grid.Field) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	for i := 0; i < field.N; i++ {
		for j := 0; j < field.N; j++ {
			row := []string{
				strconv.FormatFloat(field.X.At(i, j), 'f', 6, 64),
				strconv.FormatFloat(field.Y.At(i, j), 'f', 6, 64),
				strconv.FormatFloat(field.Z.At(i, j), 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

// ExportCSV streams a saved field to out in the same x,y,z layout.
func (s *Store) ExportCSV(runID string, out io.Writer) error {
	field, err := s.LoadField(runID)
	if err != nil {
		return err
	}
	return writeFieldCSV(out, field)
}

type runExport struct {
	Meta   RunMetadata `json:"metadata"`
	Points []point     `json:"points"`
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ExportJSON streams a saved run, metadata included, to out.
func (s *Store) ExportJSON(runID string, out io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	field, err := s.LoadField(runID)
	if err != nil {
		return err
	}
	exp := runExport{Meta: *meta, Points: make([]point, 0, field.N*field.N)}
	for i := 0; i < field.N; i++ {
		for j := 0; j < field.N; j++ {
			exp.Points = append(exp.Points, point{
				X: field.X.At(i, j),
				Y: field.Y.At(i, j),
				Z: field.Z.At(i, j),
			})
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(exp)
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

// LoadField reads a saved field.csv back into grid matrices. The grid
// size comes from the run's metadata.
func (s *Store) LoadField(runID string) (*grid.Field, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	n := meta.GridSize
	if n < grid.MinSize {
		return nil, fmt.Errorf("run %s: bad grid size %d", runID, n)
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "field.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) != n*n+1 {
		return nil, fmt.Errorf("run %s: expected %d data rows, got %d", runID, n*n, len(records)-1)
	}

	x := mat.NewDense(n, n, nil)
	y := mat.NewDense(n, n, nil)
	z := mat.NewDense(n, n, nil)
	for idx, record := range records[1:] {
		if len(record) != 3 {
			return nil, fmt.Errorf("run %s: malformed row %d", runID, idx+1)
		}
		i, j := idx/n, idx%n
		vals := make([]float64, 3)
		for k, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("run %s row %d: %w", runID, idx+1, err)
			}
			vals[k] = v
		}
		x.Set(i, j, vals[0])
		y.Set(i, j, vals[1])
		z.Set(i, j, vals[2])
	}

	return &grid.Field{X: x, Y: y, Z: z, N: n, Time: meta.TimeFactor}, nil
}
