package sweep

import (
	"fmt"
	"io"

	"go.lepak.sg/treebuild/tree"
	"gopkg.in/yaml.v3"
)

// Summary averages the results for one tree size.
type Summary struct {
	Size          int     `yaml:"size"`
	Trials        int     `yaml:"trials"`
	OptimalHeight int     `yaml:"optimal_height"`
	Original      float64 `yaml:"mean_original_height"`
	Random        float64 `yaml:"mean_random_height"`
	Balanced      float64 `yaml:"mean_balanced_height"`
	// MaxRandom is the tallest tree the random rebuild produced.
	MaxRandom int `yaml:"max_random_height"`
}

// Summarize groups results by size, keeping sizes in the order they
// first appear.
func Summarize(results []Result) []Summary {
	var out []Summary
	index := make(map[int]int)

	for _, r := range results {
		i, ok := index[r.Size]
		if !ok {
			i = len(out)
			index[r.Size] = i
			out = append(out, Summary{
				Size:          r.Size,
				OptimalHeight: tree.OptimalHeight(r.Size),
			})
		}

		s := &out[i]
		s.Trials++
		s.Original += float64(r.Original.Height)
		s.Random += float64(r.Random.Height)
		s.Balanced += float64(r.Balanced.Height)
		if r.Random.Height > s.MaxRandom {
			s.MaxRandom = r.Random.Height
		}
	}

	for i := range out {
		n := float64(out[i].Trials)
		out[i].Original /= n
		out[i].Random /= n
		out[i].Balanced /= n
	}

	return out
}

// Report is the document written by WriteReport.
type Report struct {
	Config  Config    `yaml:"config"`
	Summary []Summary `yaml:"summary"`
	// Results is left out of the document when empty.
	Results []Result `yaml:"results,omitempty"`
}

// WriteReport encodes rep to w as YAML.
func WriteReport(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode sweep report: %w", err)
	}

	return enc.Close()
}
