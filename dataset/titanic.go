// Package dataset loads feature matrices for the toolbox networks and splits
// them into training and testing sets.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// TitanicFeatures names the columns of each feature vector returned by
// LoadTitanicCSV, in order.
var TitanicFeatures = []string{"Pclass", "Sex", "Age", "SibSp", "Parch", "Fare", "Embarked"}

const titanicTarget = "Survived"

// LoadTitanicCSV reads the Kaggle Titanic passenger list.  Sex is encoded as
// male=0 and anything else 1, Embarked as S=0, C=1, Q=2 with anything else
// falling back to 0, and missing numeric fields are imputed as 0.
func LoadTitanicCSV(path string) (features [][]float64, targets []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("while opening titanic data file: %w", err)
	}
	defer f.Close()

	return ReadTitanicCSV(f)
}

func ReadTitanicCSV(r io.Reader) (features [][]float64, targets []float64, err error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("while reading header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range append([]string{titanicTarget}, TitanicFeatures...) {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("missing column %s", name)
		}
	}

	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("while reading record: %w", err)
		}

		x, y, err := encodePassenger(record, cols)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		features = append(features, x)
		targets = append(targets, y)
	}

	return features, targets, nil
}

func encodePassenger(record []string, cols map[string]int) ([]float64, float64, error) {
	field := func(name string) string {
		return strings.TrimSpace(record[cols[name]])
	}

	x := make([]float64, 0, len(TitanicFeatures))
	for _, name := range TitanicFeatures {
		switch name {
		case "Sex":
			x = append(x, encodeSex(field(name)))
		case "Embarked":
			x = append(x, encodeEmbarked(field(name)))
		default:
			v, err := parseNumber(field(name))
			if err != nil {
				return nil, 0, fmt.Errorf("while parsing %s: %w", name, err)
			}
			x = append(x, v)
		}
	}

	y, err := parseNumber(field(titanicTarget))
	if err != nil {
		return nil, 0, fmt.Errorf("while parsing %s: %w", titanicTarget, err)
	}

	return x, y, nil
}

func encodeSex(s string) float64 {
	if s == "male" {
		return 0
	}
	return 1
}

func encodeEmbarked(s string) float64 {
	switch s {
	case "C":
		return 1
	case "Q":
		return 2
	default:
		// "S" and unknown ports.
		return 0
	}
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
