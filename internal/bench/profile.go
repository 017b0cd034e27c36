package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ProfileFileName is the benchmark profile cache in the user's home
// directory.
const ProfileFileName = ".uintcalc_bench.json"

// Profile is a persisted benchmark run.
type Profile struct {
	// Timestamp records when the run finished.
	Timestamp time.Time `json:"timestamp"`
	// GoOS and GoArch pin the environment the numbers belong to.
	GoOS   string `json:"goos"`
	GoArch string `json:"goarch"`
	// Results holds the per-operation throughput.
	Results []Result `json:"results"`
}

// DefaultProfilePath returns the profile location in the home directory,
// or an empty string when no home is available.
func DefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ProfileFileName)
}

// SaveProfile writes a profile to path.
func SaveProfile(path string, profile Profile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// LoadProfile reads a profile from path. A missing file is reported via
// the returned bool rather than an error.
func LoadProfile(path string) (Profile, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Profile{}, false, nil
	}
	if err != nil {
		return Profile{}, false, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return Profile{}, false, fmt.Errorf("failed to decode profile %s: %w", path, err)
	}
	return profile, true, nil
}
