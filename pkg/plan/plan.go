package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Job is one conversion: a statement file or directory to an output CSV.
type Job struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	SwapSign bool   `yaml:"swap_sign"`
}

// Plan is a YAML-defined batch of conversion jobs.
type Plan struct {
	Jobs []Job `yaml:"jobs"`
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Jobs) == 0 {
		return nil, fmt.Errorf("plan has no jobs")
	}
	return &p, nil
}

func (p *Plan) Print() {
	for i, job := range p.Jobs {
		fmt.Printf("[%d] input=%s output=%s swap_sign=%t\n", i+1, job.Input, job.Output, job.SwapSign)
	}
}
