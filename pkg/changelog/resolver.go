// pkg/changelog/resolver.go
package changelog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

const (
	// UnreleasedToken marks a pending release above the current one
	UnreleasedToken = "unreleased"

	// PreviewSuffix is appended to the version when an unreleased header was seen
	PreviewSuffix = "-preview"

	headerPrefix = "##"
)

var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Version is the current release as read from the changelog
type Version struct {
	Number  string // MAJOR.MINOR.PATCH
	Preview bool   // An "Unreleased" header preceded the version header
}

// String returns the version text used in manifests
func (v Version) String() string {
	if v.Preview {
		return v.Number + PreviewSuffix
	}
	return v.Number
}

// Resolve scans changelog text top to bottom and returns the current release.
func Resolve(text string) (Version, error) {
	return ResolveReader(strings.NewReader(text))
}

// ResolveFile reads the changelog at path and resolves its version.
func ResolveFile(path string) (Version, error) {
	f, err := os.Open(path)
	if err != nil {
		return Version{}, fmt.Errorf("opening changelog: %w", err)
	}
	defer f.Close()

	return ResolveReader(f)
}

// ResolveReader is Resolve over a stream.
//
// Only second-level headers are considered. An "Unreleased" header sets the
// preview flag and scanning continues; the first other header must carry a
// strict three-component version or resolution fails.
func ResolveReader(r io.Reader) (Version, error) {
	preview := false
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		token, ok := headerToken(scanner.Text())
		if !ok {
			continue
		}

		if token == UnreleasedToken {
			preview = true
			continue
		}

		if !semverPattern.MatchString(token) {
			return Version{}, &VersionFormatError{Line: lineNo, Token: token}
		}

		return Version{Number: token, Preview: preview}, nil
	}
	if err := scanner.Err(); err != nil {
		return Version{}, fmt.Errorf("reading changelog: %w", err)
	}

	return Version{}, ErrVersionNotFound
}

// headerToken extracts the lowercased version token from a "## " header line.
func headerToken(line string) (string, bool) {
	if !strings.HasPrefix(line, headerPrefix) {
		return "", false
	}
	rest := line[len(headerPrefix):]
	if strings.HasPrefix(rest, "#") {
		// ### subsections belong to a release, they never name one
		return "", false
	}

	fields := strings.Fields(strings.ToLower(rest))
	if len(fields) == 0 {
		return "", false
	}

	return strings.TrimPrefix(unbracket(fields[0]), "v"), true
}

// unbracket turns keep-a-changelog link tokens like "[1.2.3](url)" into "1.2.3".
func unbracket(token string) string {
	if !strings.HasPrefix(token, "[") {
		return token
	}
	end := strings.Index(token, "]")
	if end < 0 {
		return token
	}
	return token[1:end]
}
