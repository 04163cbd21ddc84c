package flightplan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindScenario returns the unique scenario matching the name.
// If the query is meant to match all scenarios and the directory is empty it
// returns an empty default scenario. In any other ambiguous case it returns
// an error.
func FindScenario(path, query string) (*Scenario, error) {

	scenarioPaths, err := findScenarioPaths(path, query)
	if err != nil {
		return nil, err
	}
	switch len(scenarioPaths) {
	case 0:
		// nothing found, return an error by default unless the query was ""
		if query == "" {
			return NewScenario("baseline"), nil
		}
		return nil, fmt.Errorf("could not find scenario %q", query)
	case 1:
		return loadScenarioFile(path, scenarioPaths[0])
	default:
		return nil, fmt.Errorf("multiple scenarios found for %q", query)
	}
}

// FindScenarios discovers and loads scenario files from a plans directory.
// The query string can be used to filter which scenarios are loaded.
// If query is empty, all scenarios (.jsonl files) in the path are loaded.
// A scenario name is its relative path from the plans directory, without the
// .jsonl extension.
func FindScenarios(path, query string) ([]*Scenario, error) {
	scenarioPaths, err := findScenarioPaths(path, query)
	if err != nil {
		return nil, err
	}

	var loaded []*Scenario
	for _, fullPath := range scenarioPaths {
		scenario, err := loadScenarioFile(path, fullPath)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, scenario)
	}

	return loaded, nil
}

// loadScenarioFile opens, decodes, and names a scenario from a given file path.
// The name is the relative path to the plans directory root.
func loadScenarioFile(plansPath, fullPath string) (*Scenario, error) {
	relPath, err := filepath.Rel(plansPath, fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not determine relative path for %q: %w", fullPath, err)
	}
	name := strings.TrimSuffix(relPath, ".jsonl")

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open scenario file %q: %w", fullPath, err)
	}
	defer f.Close()

	scenario, err := DecodeScenario(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode scenario file %q: %w", fullPath, err)
	}
	scenario.name = name
	return scenario, nil
}

// SaveScenario saves a single scenario to its corresponding file within the
// plans directory. A scenario named "family/two-kids" is saved to
// "<path>/family/two-kids.jsonl".
func SaveScenario(path string, scenario *Scenario) error {
	name := scenario.Name()
	if name == "" {
		return fmt.Errorf("cannot save scenario with an empty name")
	}

	filePath := filepath.Join(path, name+".jsonl")

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for scenario %q: %w", filePath, err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error opening scenario file %q for writing: %w", filePath, err)
	}
	defer file.Close()

	return EncodeScenario(file, scenario)
}

// findScenarioPaths scans the plans directory for scenario files matching the query.
func findScenarioPaths(path, query string) ([]string, error) {
	var scenarios []string

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".jsonl") {

			relPath, err := filepath.Rel(path, p)
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(relPath, ".jsonl")

			if query == "" || name == query {
				scenarios = append(scenarios, p)
			}
		}
		return nil
	})

	return scenarios, err
}
