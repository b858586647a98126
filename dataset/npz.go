package dataset

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"
	"github.com/sbinet/npyio/npz"
)

// LoadNPZ reads a numpy archive holding a feature matrix "x" of shape
// (examples, width) and a target vector "y" of shape (examples) or
// (examples, 1).  Both may be float32 or float64.  NaN entries are imputed as 0.
func LoadNPZ(path string) (features [][]float64, targets []float64, err error) {
	r, err := npz.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("while opening npz data file: %w", err)
	}
	defer r.Close()

	x, xShape, err := readFloats(r, "x.npy")
	if err != nil {
		return nil, nil, fmt.Errorf("while reading x.npy: %w", err)
	}
	if len(xShape) != 2 {
		return nil, nil, fmt.Errorf("x.npy has shape %v, want (examples, width)", xShape)
	}

	y, yShape, err := readFloats(r, "y.npy")
	if err != nil {
		return nil, nil, fmt.Errorf("while reading y.npy: %w", err)
	}
	if len(yShape) == 0 || yShape[0] != xShape[0] || len(y) != xShape[0] {
		return nil, nil, fmt.Errorf("y.npy has shape %v, want (%d) or (%d, 1)", yShape, xShape[0], xShape[0])
	}

	// numpy writes C-style layouts, so each example's features are stored
	// contiguously.
	width := xShape[1]
	features = make([][]float64, xShape[0])
	for k := range features {
		features[k] = x[k*width : (k+1)*width]
	}

	return features, y, nil
}

func readFloats(r *npz.Reader, name string) ([]float64, []int, error) {
	header := r.Header(name)
	if header == nil {
		return nil, nil, fmt.Errorf("no array named %s", name)
	}
	if header.Descr.Fortran {
		return nil, nil, fmt.Errorf("fortran-ordered arrays are not supported")
	}

	var out []float64
	switch header.Descr.Type {
	case "<f4":
		var raw []float32
		if err := r.Read(name, &raw); err != nil {
			return nil, nil, fmt.Errorf("while reading float32 array: %w", err)
		}
		out = make([]float64, len(raw))
		for i, v := range raw {
			if math32.IsNaN(v) {
				v = 0
			}
			out[i] = float64(v)
		}
	case "<f8":
		if err := r.Read(name, &out); err != nil {
			return nil, nil, fmt.Errorf("while reading float64 array: %w", err)
		}
		for i, v := range out {
			if math.IsNaN(v) {
				out[i] = 0
			}
		}
	default:
		return nil, nil, fmt.Errorf("unsupported dtype %s", header.Descr.Type)
	}

	return out, header.Descr.Shape, nil
}

// Load picks a loader from the file extension.
func Load(path string) (features [][]float64, targets []float64, err error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadTitanicCSV(path)
	case ".npz":
		return LoadNPZ(path)
	default:
		return nil, nil, fmt.Errorf("unsupported data file extension %q", ext)
	}
}
