package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// toolVersionTimeout bounds a single "<tool> --version" call.
const toolVersionTimeout = 5 * time.Second

// toolVersionRegex matches version output like "Python 3.12.1" or "Gradle 8.5".
var toolVersionRegex = regexp.MustCompile(`v?\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9.]+)?`)

// ToolInfo describes an external test tool installation.
type ToolInfo struct {
	// Name is the command name, e.g. "python3".
	Name string `json:"name"`

	// Languages are the languages whose tests use the tool.
	Languages []string `json:"languages"`

	// Version is the detected version, empty if unknown.
	Version string `json:"version,omitempty"`

	// Path is the resolved binary path.
	Path string `json:"path,omitempty"`

	// Found indicates if the tool was found in PATH.
	Found bool `json:"found"`

	// Message provides additional information when detection failed.
	Message string `json:"message,omitempty"`
}

// DetectTool finds a test tool in PATH and asks it for its version.
func DetectTool(ctx context.Context, name string, languages ...string) ToolInfo {
	info := ToolInfo{Name: name, Languages: languages}

	path, err := exec.LookPath(name)
	if err != nil {
		info.Message = name + " not found in PATH"
		return info
	}
	info.Path = path
	info.Found = true

	version, err := getToolVersion(ctx, path)
	if err != nil {
		info.Message = "failed to get version: " + err.Error()
		return info
	}
	info.Version = version
	return info
}

// getToolVersion executes "<tool> --version" and extracts the version string.
func getToolVersion(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, toolVersionTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return extractVersion(out.String())
}

// extractVersion extracts the first version number from tool output.
func extractVersion(output string) (string, error) {
	match := toolVersionRegex.FindString(output)
	if match == "" {
		return "", &versionParseError{output: output}
	}
	return strings.TrimPrefix(match, "v"), nil
}

// versionParseError indicates failure to parse tool version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse version from output: " + strings.TrimSpace(e.output)
}

// String returns a human-readable tool info line.
func (t ToolInfo) String() string {
	langs := strings.Join(t.Languages, ", ")
	switch {
	case !t.Found:
		return fmt.Sprintf("  %-8s not found (%s)", t.Name, langs)
	case t.Version == "":
		return fmt.Sprintf("  %-8s unknown version at %s (%s)", t.Name, t.Path, langs)
	default:
		return fmt.Sprintf("  %-8s %s at %s (%s)", t.Name, t.Version, t.Path, langs)
	}
}
