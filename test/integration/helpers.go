//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey     string
	BaseURL    string
	MolliePath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:     os.Getenv("MOLLIE_TEST_API_KEY"),
		BaseURL:    os.Getenv("MOLLIE_TEST_BASE_URL"),
		MolliePath: getMolliePath(),
		Verbose:    os.Getenv("MOLLIE_VERBOSE") == "true",
	}
}

// getMolliePath determines the path to the mollie binary
func getMolliePath() string {
	if path := os.Getenv("MOLLIE_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../mollie",
		"./mollie",
		"../mollie",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "mollie" // Fallback to PATH
}

// SkipIfMissingConfig skips test if required config is missing. Only test
// mode keys are accepted so the suite never creates live payments.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("MOLLIE_TEST_API_KEY not set, skipping integration test")
	}

	if !strings.HasPrefix(config.APIKey, "test_") {
		t.Skip("MOLLIE_TEST_API_KEY is not a test mode key, skipping integration test")
	}

	if _, err := exec.LookPath(config.MolliePath); err != nil {
		t.Skipf("mollie binary not found at %s, skipping integration test", config.MolliePath)
	}
}

// CommandRunner provides utilities for running mollie commands
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a runner with its own empty config file, so the
// developer's ~/.mollie/config.yml is never read or written.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes a mollie command with the test credentials and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	full := append([]string{"--config", runner.configFile, "--api-key", runner.config.APIKey}, args...)
	if runner.config.BaseURL != "" {
		full = append(full, "--base-url", runner.config.BaseURL)
	}

	cmd := exec.Command(runner.config.MolliePath, full...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.MolliePath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a mollie command with JSON output and decodes the result
// into target.
func (runner *CommandRunner) RunJSON(target interface{}, args ...string) error {
	stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
	if err != nil {
		return fmt.Errorf("%w: %s", err, stderr)
	}

	return json.Unmarshal([]byte(stdout), target)
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// CleanupCustomer attempts to delete a test customer
func (runner *CommandRunner) CleanupCustomer(id string) {
	stdout, stderr, err := runner.Run("customers", "delete", id, "--force")
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for customer %s: %s\nStderr: %s", id, stdout, stderr)
	}
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not valid JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var decoded interface{}
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil || decoded == nil {
		t.Errorf("Output is not valid YAML: %s", output)
	}
}
