package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const transcriptExt = ".txt"

// Golden is one evaluation input. ActualOutput is only set for goldens that
// carry a pre-recorded answer instead of being summarized. ExpectedOutput is
// the reference for that answer, or for the summary of a transcript;
// ExpectedActionItems is the reference action-item record.
type Golden struct {
	Name                string `yaml:"name"`
	Input               string `yaml:"input" validate:"required"`
	ActualOutput        string `yaml:"actual_output,omitempty"`
	ExpectedOutput      string `yaml:"expected_output,omitempty"`
	ExpectedActionItems string `yaml:"expected_action_items,omitempty"`
}

// IsTranscript reports whether path names a visible .txt file.
func IsTranscript(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.ToLower(filepath.Ext(name)) == transcriptExt
}

// Discover lists transcript files in dir sorted by name.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsTranscript(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}

	sort.Strings(files)
	return files, nil
}

// Name is the transcript file name without its extension.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadTranscripts reads every transcript in dir as an input-only golden.
func LoadTranscripts(dir string) ([]Golden, error) {
	files, err := Discover(dir)
	if err != nil {
		return nil, fmt.Errorf("discover transcripts: %w", err)
	}

	goldens := make([]Golden, 0, len(files))
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read transcript %s: %w", path, err)
		}
		goldens = append(goldens, Golden{
			Name:  Name(path),
			Input: strings.TrimSpace(string(content)),
		})
	}
	return goldens, nil
}

// LoadGoldens reads a YAML list of goldens. Unnamed entries are numbered.
func LoadGoldens(path string) ([]Golden, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read goldens file: %w", err)
	}

	var goldens []Golden
	if err := yaml.Unmarshal(data, &goldens); err != nil {
		return nil, fmt.Errorf("failed to parse goldens file: %w", err)
	}

	validate := validator.New()
	for i := range goldens {
		if err := validate.Struct(goldens[i]); err != nil {
			return nil, fmt.Errorf("golden %d in %s: %w", i, path, err)
		}
		if goldens[i].Name == "" {
			goldens[i].Name = fmt.Sprintf("golden-%d", i+1)
		}
	}
	return goldens, nil
}
