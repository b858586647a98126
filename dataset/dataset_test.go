package dataset

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ahmedtd/mlp/toolbox"
	"github.com/google/go-cmp/cmp"
	"github.com/sbinet/npyio/npz"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const titanicSample = `PassengerId,Survived,Pclass,Name,Sex,Age,SibSp,Parch,Ticket,Fare,Cabin,Embarked
1,0,3,"Braund, Mr. Owen Harris",male,22,1,0,A/5 21171,7.25,,S
2,1,1,"Cumings, Mrs. John Bradley (Florence Briggs Thayer)",female,38,1,0,PC 17599,71.2833,C85,C
6,0,3,"Moran, Mr. James",male,,0,0,330877,8.4583,,Q
62,1,1,"Icard, Miss. Amelie",female,38,0,0,113572,80,B28,
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadTitanicCSV(t *testing.T) {
	path := writeFile(t, "train.csv", titanicSample)

	features, targets, err := LoadTitanicCSV(path)
	require.NoError(t, err)

	wantFeatures := [][]float64{
		{3, 0, 22, 1, 0, 7.25, 0},
		{1, 1, 38, 1, 0, 71.2833, 1},
		{3, 0, 0, 0, 0, 8.4583, 2}, // Missing age imputed as 0.
		{1, 1, 38, 0, 0, 80, 0},    // Missing port falls back to 0.
	}
	if diff := cmp.Diff(features, wantFeatures); diff != "" {
		t.Errorf("Wrong features; diff (-got +want)\n%s", diff)
	}
	if diff := cmp.Diff(targets, []float64{0, 1, 0, 1}); diff != "" {
		t.Errorf("Wrong targets; diff (-got +want)\n%s", diff)
	}
	for _, x := range features {
		require.Len(t, x, len(TitanicFeatures))
	}
}

func TestReadTitanicCSVErrors(t *testing.T) {
	_, _, err := ReadTitanicCSV(strings.NewReader("PassengerId,Survived,Pclass\n1,0,3\n"))
	require.ErrorContains(t, err, "missing column")

	bad := strings.Replace(titanicSample, "71.2833", "seventy", 1)
	_, _, err = ReadTitanicCSV(strings.NewReader(bad))
	require.ErrorContains(t, err, "line 3")
	require.ErrorContains(t, err, "Fare")

	_, _, err = LoadTitanicCSV(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestLoadNPZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.npz")

	w, err := npz.Create(path)
	require.NoError(t, err)
	x := mat.NewDense(3, 2, []float64{
		1, 2,
		math.NaN(), 4,
		5, 6,
	})
	require.NoError(t, w.Write("x.npy", x))
	require.NoError(t, w.Write("y.npy", []float32{0, 1, float32(math.NaN())}))
	require.NoError(t, w.Close())

	features, targets, err := Load(path)
	require.NoError(t, err)

	if diff := cmp.Diff(features, [][]float64{{1, 2}, {0, 4}, {5, 6}}); diff != "" {
		t.Errorf("Wrong features; diff (-got +want)\n%s", diff)
	}
	if diff := cmp.Diff(targets, []float64{0, 1, 0}); diff != "" {
		t.Errorf("Wrong targets; diff (-got +want)\n%s", diff)
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	_, _, err := Load(writeFile(t, "data.json", "{}"))
	require.ErrorContains(t, err, "unsupported data file extension")
}

func TestSplit(t *testing.T) {
	r := rand.New(rand.NewSource(12345))

	train, test, err := Split(10, 0.3, r)
	require.NoError(t, err)
	require.Len(t, train, 7)
	require.Len(t, test, 3)

	all := append(slices.Clone(train), test...)
	slices.Sort(all)
	if diff := cmp.Diff(all, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}); diff != "" {
		t.Errorf("Split is not a disjoint cover; diff (-got +want)\n%s", diff)
	}

	_, _, err = Split(10, 1.5, r)
	require.Error(t, err)
	_, _, err = Split(10, -0.1, r)
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	features := [][]float64{
		{1, 10, 5},
		{3, 20, 5},
		{2, 30, 5},
	}
	Normalize(features)

	want := [][]float64{
		{0, 0, 0},
		{1, 0.5, 0},
		{0.5, 1, 0},
	}
	if diff := cmp.Diff(features, want); diff != "" {
		t.Errorf("Wrong normalized features; diff (-got +want)\n%s", diff)
	}
}

func TestAccuracy(t *testing.T) {
	// A single sigmoid neuron computing x0 - 0.5.
	net := &toolbox.Network{
		Layers: []*toolbox.Layer{
			{Neurons: []*toolbox.Neuron{
				{Activation: toolbox.Sigmoid, Weights: []float64{1}, Bias: -0.5},
			}},
		},
	}
	features := [][]float64{{0}, {1}, {0.2}, {0.9}}
	targets := []float64{0, 1, 1, 1}

	require.InDelta(t, 0.75, Accuracy(net, features, targets, []int{0, 1, 2, 3}, 0.5), 1e-12)
	require.InDelta(t, 1.0, Accuracy(net, features, targets, []int{0, 1}, 0.5), 1e-12)
	require.Zero(t, Accuracy(net, features, targets, nil, 0.5))
}
