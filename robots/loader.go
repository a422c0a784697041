package robots

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

/* Loader manages robot configuration from robots.yaml
 * Provides in-memory lookup for fast access
 */

// Config represents the structure of robots.yaml
type Config struct {
	Robots []RobotConfig `yaml:"robots"`
}

// RobotConfig represents a single robot in the YAML file
type RobotConfig struct {
	RobotID     string `yaml:"robot_id"`
	Webhook     string `yaml:"webhook"`
	Secret      string `yaml:"secret"`     // Inline secret, SEC prefix
	SecretEnv   string `yaml:"secret_env"` // Name of the env var holding the secret
	Description string `yaml:"description"`
}

// Loader holds the loaded robots
type Loader struct {
	robots map[string]*Robot
}

// NewLoader creates a new robot loader
func NewLoader() *Loader {
	return &Loader{
		robots: make(map[string]*Robot),
	}
}

// Load reads and parses the robots.yaml file, replacing any robots loaded before
// On error the previously loaded robots are kept
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading robots file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parsing robots YAML: %w", err)
	}

	loaded := make(map[string]*Robot, len(config.Robots))
	for _, rc := range config.Robots {
		r := &Robot{
			RobotID:     rc.RobotID,
			Webhook:     rc.Webhook,
			Description: rc.Description,
			secret:      rc.Secret,
			secretEnv:   rc.SecretEnv,
		}

		if err := r.Validate(); err != nil {
			return fmt.Errorf("validating robot: %w", err)
		}
		if _, dup := loaded[r.RobotID]; dup {
			return fmt.Errorf("duplicate robot_id: %s", r.RobotID)
		}

		loaded[r.RobotID] = r
	}

	l.robots = loaded
	return nil
}

// Get retrieves a robot by its ID
func (l *Loader) Get(robotID string) (*Robot, error) {
	r, exists := l.robots[robotID]
	if !exists {
		return nil, fmt.Errorf("robot not found: %s", robotID)
	}
	return r, nil
}

// List returns all loaded robots sorted by ID
func (l *Loader) List() []*Robot {
	list := make([]*Robot, 0, len(l.robots))
	for _, r := range l.robots {
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].RobotID < list[j].RobotID })
	return list
}

// Exists checks if a robot ID exists
func (l *Loader) Exists(robotID string) bool {
	_, exists := l.robots[robotID]
	return exists
}
