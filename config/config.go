// Package config loads device profiles for the flashing CLI from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration decodes YAML strings like "5s" or "250ms" into a duration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Profile describes how to reach and talk to one target device.
type Profile struct {
	// Port is the serial device name, e.g. /dev/ttyACM0 or COM6
	Port string `yaml:"port"`

	// Baud is the serial baud rate
	Baud int `yaml:"baud"`

	// ReadTimeout bounds each blocking serial read
	ReadTimeout Duration `yaml:"read_timeout"`

	// CheckSiliconID aborts flashing when the device silicon ID does not
	// match the image header
	CheckSiliconID bool `yaml:"check_silicon_id"`

	// VerifyRowChecksums validates each row's checksum byte on the host
	// before transmission
	VerifyRowChecksums bool `yaml:"verify_row_checksums"`
}

// Default returns the profile used when no config file is given.
func Default() Profile {
	return Profile{
		Baud:        115200,
		ReadTimeout: Duration(5 * time.Second),
	}
}

// Load reads a profile from the YAML file at path, applied on top of the
// defaults.
func Load(path string) (Profile, error) {
	p := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parse config %s: %w", path, err)
	}

	if p.Baud <= 0 {
		return p, fmt.Errorf("config %s: baud must be positive, got %d", path, p.Baud)
	}

	return p, nil
}
