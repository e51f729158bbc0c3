package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/astroviz/internal/units"
)

// Store keeps derived scalings on disk, one JSON file per record.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// ScalingRecord is the persisted form of a derived scaling.
type ScalingRecord struct {
	ID        string    `json:"id"`
	System    string    `json:"system"`
	Timestamp time.Time `json:"timestamp"`
	Mu        float64   `json:"mu"`

	Length   float64 `json:"length"`
	Mass     float64 `json:"mass"`
	Time     float64 `json:"time"`
	Density  float64 `json:"density"`
	Velocity float64 `json:"velocity"`

	Pressure      float64 `json:"pressure"`
	Energy        float64 `json:"energy"`
	EnergyDensity float64 `json:"energy_density"`
	Temperature   float64 `json:"temperature"`

	G          float64 `json:"g"`
	Stefan     float64 `json:"stefan"`
	Planck     float64 `json:"planck"`
	Boltzmann  float64 `json:"boltzmann"`
	LightSpeed float64 `json:"light_speed"`
	AtomicMass float64 `json:"atomic_mass"`
}

// NewRecord snapshots a scaling for storage or export.
func NewRecord(sc *units.Scaling) ScalingRecord {
	return ScalingRecord{
		System:        sc.System.Name,
		Mu:            sc.Mu,
		Length:        sc.Length,
		Mass:          sc.Mass,
		Time:          sc.Time,
		Density:       sc.Density,
		Velocity:      sc.Velocity,
		Pressure:      sc.Pressure,
		Energy:        sc.Energy,
		EnergyDensity: sc.EnergyDensity,
		Temperature:   sc.Temperature,
		G:             sc.G,
		Stefan:        sc.Stefan,
		Planck:        sc.Planck,
		Boltzmann:     sc.Boltzmann,
		LightSpeed:    sc.LightSpeed,
		AtomicMass:    sc.AtomicMass,
	}
}

// SaveScaling writes a record and returns its generated ID.
func (s *Store) SaveScaling(sc *units.Scaling) (string, error) {
	rec := NewRecord(sc)
	rec.ID = fmt.Sprintf("%s_%d", sc.System.Name, time.Now().Unix())
	rec.Timestamp = time.Now()

	file, err := os.Create(filepath.Join(s.baseDir, rec.ID+".json"))
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// List returns all stored records, skipping unreadable files.
func (s *Store) List() ([]ScalingRecord, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ScalingRecord{}, nil
		}
		return nil, err
	}

	recs := make([]ScalingRecord, 0)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var rec ScalingRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Load reads one record by ID.
func (s *Store) Load(id string) (*ScalingRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id+".json"))
	if err != nil {
		return nil, err
	}
	var rec ScalingRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
