package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/emberfx/internal/driver"
)

type ExportData struct {
	Preset   string             `json:"preset"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Frames   int                `json:"frames"`
	Times    []float64          `json:"times"`
	Live     []int              `json:"live"`
	Spawned  []int              `json:"spawned"`
	Expired  []int              `json:"expired"`
	Metrics  map[string]float64 `json:"metrics"`
}

func ExportJSON(path string, preset string, dt, duration float64, result *driver.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, preset, dt, duration, result)
}

func ExportJSONStdout(preset string, dt, duration float64, result *driver.Result) error {
	return writeJSON(os.Stdout, preset, dt, duration, result)
}

func writeJSON(w io.Writer, preset string, dt, duration float64, result *driver.Result) error {
	data := ExportData{
		Preset:   preset,
		Dt:       dt,
		Duration: duration,
		Frames:   len(result.Frames),
		Times:    make([]float64, len(result.Frames)),
		Live:     make([]int, len(result.Frames)),
		Spawned:  make([]int, len(result.Frames)),
		Expired:  make([]int, len(result.Frames)),
		Metrics:  result.Metrics,
	}

	for i, f := range result.Frames {
		data.Times[i] = f.Time
		data.Live[i] = f.Live
		data.Spawned[i] = f.Spawned
		data.Expired[i] = f.Expired
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
