// Package config loads generator configuration from YAML with environment
// overrides. Precedence is defaults, then file, then environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ScenarioConfig sets the generation semantics shared by every run.
type ScenarioConfig struct {
	Agents             int     `yaml:"agents"`
	Version            string  `yaml:"version"`
	SeedBase           uint64  `yaml:"seed_base"`
	Inclusion          string  `yaml:"inclusion"`
	InclusionProb      float64 `yaml:"inclusion_prob"`
	ScaleDivisor       float64 `yaml:"scale_divisor"`
	ZeroActivationProb float64 `yaml:"zero_activation_prob"`

	Treatment TreatmentConfig `yaml:"treatment"`
}

// TreatmentConfig configures the optional activation override for one
// belief. An empty belief name disables the treatment.
type TreatmentConfig struct {
	Belief      string  `yaml:"belief"`
	Probability float64 `yaml:"probability"`
	Location    float64 `yaml:"location"`
	Scale       float64 `yaml:"scale"`
}

// GraphConfig sets the friendship graph topology.
type GraphConfig struct {
	Neighbours   int     `yaml:"neighbours"`
	Rewire       float64 `yaml:"rewire"`
	SelfLoopProb float64 `yaml:"self_loop_prob"`
	WeightLoc    float64 `yaml:"weight_location"`
	WeightScale  float64 `yaml:"weight_scale"`

	// When true, neighbour count and rewiring probability are redrawn per
	// scenario from the distributions below instead of the fixed values.
	Randomize       bool    `yaml:"randomize"`
	NeighbourTrials int     `yaml:"neighbour_trials"`
	NeighbourProb   float64 `yaml:"neighbour_prob"`
	RewireLoc       float64 `yaml:"rewire_location"`
	RewireScale     float64 `yaml:"rewire_scale"`
}

// OutputConfig sets where artifacts and the run manifest land.
type OutputConfig struct {
	Dir          string `yaml:"dir"`
	ManifestPath string `yaml:"manifest_path"`
}

// UploadConfig sets the optional S3-compatible destination. Credentials may
// use ${VAR} expansion so secrets stay out of the file.
type UploadConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// LoggingConfig sets log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Config is the full generator configuration.
type Config struct {
	Scenario ScenarioConfig `yaml:"scenario"`
	Graph    GraphConfig    `yaml:"graph"`
	Output   OutputConfig   `yaml:"output"`
	Upload   UploadConfig   `yaml:"upload"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Default returns the built-in configuration. The defaults reproduce the
// reference dataset: full belief catalog, five thousand agents, fixed
// small-world topology and the cycling-risk treatment arm.
func Default() *Config {
	return &Config{
		Scenario: ScenarioConfig{
			Agents:             5000,
			Version:            "20221019v1",
			SeedBase:           543879,
			Inclusion:          "all",
			InclusionProb:      0.6,
			ScaleDivisor:       3,
			ZeroActivationProb: 0.5,
			Treatment: TreatmentConfig{
				Belief:      "Cycling is dangerous",
				Probability: 0.4,
				Location:    -0.5,
				Scale:       0.15,
			},
		},
		Graph: GraphConfig{
			Neighbours:      10,
			Rewire:          0.3,
			SelfLoopProb:    0.8,
			WeightLoc:       0.5,
			WeightScale:     0.15,
			Randomize:       false,
			NeighbourTrials: 20,
			NeighbourProb:   0.5,
			RewireLoc:       0.3,
			RewireScale:     0.1,
		},
		Output: OutputConfig{
			Dir:          "output",
			ManifestPath: "output/scengen.db",
		},
		Upload: UploadConfig{
			UseSSL: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns the configuration from path layered over defaults, with
// environment overrides applied last. A missing file is not an error; the
// defaults stand.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnvOverrides()
	cfg.expandSecrets()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks every field that could silently produce a broken dataset.
func (c *Config) Validate() error {
	s := &c.Scenario
	if s.Agents <= 0 {
		return fmt.Errorf("config: scenario.agents must be positive, got %d", s.Agents)
	}
	if s.Version == "" {
		return fmt.Errorf("config: scenario.version must not be empty")
	}
	switch s.Inclusion {
	case "all", "bernoulli":
	default:
		return fmt.Errorf("config: scenario.inclusion must be \"all\" or \"bernoulli\", got %q", s.Inclusion)
	}
	if s.InclusionProb < 0 || s.InclusionProb > 1 {
		return fmt.Errorf("config: scenario.inclusion_prob must be in [0,1], got %v", s.InclusionProb)
	}
	if s.ScaleDivisor <= 0 {
		return fmt.Errorf("config: scenario.scale_divisor must be positive, got %v", s.ScaleDivisor)
	}
	if s.ZeroActivationProb < 0 || s.ZeroActivationProb > 1 {
		return fmt.Errorf("config: scenario.zero_activation_prob must be in [0,1], got %v", s.ZeroActivationProb)
	}
	if t := s.Treatment; t.Belief != "" {
		if t.Probability < 0 || t.Probability > 1 {
			return fmt.Errorf("config: treatment.probability must be in [0,1], got %v", t.Probability)
		}
		if t.Scale <= 0 {
			return fmt.Errorf("config: treatment.scale must be positive, got %v", t.Scale)
		}
	}

	g := &c.Graph
	if g.Neighbours <= 0 || g.Neighbours%2 != 0 {
		return fmt.Errorf("config: graph.neighbours must be positive and even, got %d", g.Neighbours)
	}
	if g.Neighbours >= s.Agents {
		return fmt.Errorf("config: graph.neighbours %d must be below scenario.agents %d", g.Neighbours, s.Agents)
	}
	if g.Rewire < 0 || g.Rewire > 1 {
		return fmt.Errorf("config: graph.rewire must be in [0,1], got %v", g.Rewire)
	}
	if g.SelfLoopProb < 0 || g.SelfLoopProb > 1 {
		return fmt.Errorf("config: graph.self_loop_prob must be in [0,1], got %v", g.SelfLoopProb)
	}
	if g.WeightScale <= 0 {
		return fmt.Errorf("config: graph.weight_scale must be positive, got %v", g.WeightScale)
	}
	if g.Randomize {
		if g.NeighbourTrials <= 0 {
			return fmt.Errorf("config: graph.neighbour_trials must be positive, got %d", g.NeighbourTrials)
		}
		if g.NeighbourProb < 0 || g.NeighbourProb > 1 {
			return fmt.Errorf("config: graph.neighbour_prob must be in [0,1], got %v", g.NeighbourProb)
		}
		if g.RewireScale <= 0 {
			return fmt.Errorf("config: graph.rewire_scale must be positive, got %v", g.RewireScale)
		}
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("config: output.dir must not be empty")
	}
	if c.Output.ManifestPath == "" {
		return fmt.Errorf("config: output.manifest_path must not be empty")
	}

	if u := &c.Upload; u.Enabled {
		if u.Endpoint == "" {
			return fmt.Errorf("config: upload.endpoint required when upload is enabled")
		}
		if u.Bucket == "" {
			return fmt.Errorf("config: upload.bucket required when upload is enabled")
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn":
	default:
		return fmt.Errorf("config: logging.level must be debug, info or warn, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SCENGEN_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv("SCENGEN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SCENGEN_AGENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Scenario.Agents = n
		}
	}
	if v := os.Getenv("SCENGEN_S3_ENDPOINT"); v != "" {
		c.Upload.Endpoint = v
	}
	if v := os.Getenv("SCENGEN_S3_BUCKET"); v != "" {
		c.Upload.Bucket = v
	}
	if v := os.Getenv("SCENGEN_S3_ACCESS_KEY"); v != "" {
		c.Upload.AccessKey = v
	}
	if v := os.Getenv("SCENGEN_S3_SECRET_KEY"); v != "" {
		c.Upload.SecretKey = v
	}
	if v := os.Getenv("SCENGEN_UPLOAD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Upload.Enabled = b
		}
	}
}

// expandSecrets resolves ${VAR} references in credential fields.
func (c *Config) expandSecrets() {
	c.Upload.AccessKey = os.ExpandEnv(c.Upload.AccessKey)
	c.Upload.SecretKey = os.ExpandEnv(c.Upload.SecretKey)
}
