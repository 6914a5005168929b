// Package redaction scrubs credential material from diagnostic output:
// failure messages, debug-logged requests and the log stream itself.
// Remote payloads are never passed through it.
package redaction

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/spf13/viper"
	"github.com/zricethezav/gitleaks/v8/config"
	"github.com/zricethezav/gitleaks/v8/detect"
)

const marker = "[REDACTED]"

// Redactor handles sanitization of sensitive data.
// All fields are read-only after construction, making it safe for concurrent use.
type Redactor struct {
	// nil when gitleaks is disabled or failed to load
	detector *detect.Detector
	salt     string
	patterns []*regexp.Regexp
	paths    []string
	hashMode bool
}

// Config holds the configuration for the Redactor.
type Config struct {
	// Salt keys the HMAC in hash mode. Empty means unsalted.
	Salt string
	// Extra patterns to redact (e.g. "INT-[A-Z0-9]{16}")
	Patterns []string
	// Map keys whose string values are always redacted, matched exactly or
	// as a dotted suffix (e.g. "SecretAccessKey" matches "Auth.SecretAccessKey").
	Paths []string
	// Replace with an HMAC digest instead of the marker, so equal secrets
	// stay correlatable.
	HashMode bool
	// Use only the regex patterns.
	DisableGitleaks bool
}

// New creates a new Redactor with the given configuration.
func New(cfg Config) (*Redactor, error) {
	r := &Redactor{
		paths:    append(append([]string{}, defaultPaths...), cfg.Paths...),
		hashMode: cfg.HashMode,
		salt:     cfg.Salt,
		patterns: make([]*regexp.Regexp, 0, len(cfg.Patterns)+len(defaultPatterns)),
	}

	if !cfg.DisableGitleaks {
		detector, err := newGitleaksDetector()
		if err != nil {
			slog.Warn("gitleaks detector unavailable, using regex patterns only", "error", err)
		} else {
			r.detector = detector
		}
	}

	for _, p := range defaultPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to compile default pattern %s: %w", p, err)
		}
		r.patterns = append(r.patterns, re)
	}

	for _, p := range cfg.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to compile custom pattern %s: %w", p, err)
		}
		r.patterns = append(r.patterns, re)
	}

	return r, nil
}

func newGitleaksDetector() (*detect.Detector, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(strings.NewReader(config.DefaultConfig)); err != nil {
		return nil, fmt.Errorf("failed to read gitleaks config: %w", err)
	}

	var vc config.ViperConfig
	if err := v.Unmarshal(&vc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gitleaks config: %w", err)
	}

	cfg, err := vc.Translate()
	if err != nil {
		return nil, fmt.Errorf("failed to translate gitleaks config: %w", err)
	}

	return detect.NewDetector(cfg), nil
}

// Redact returns a sanitized copy of data. Maps and slices are copied, so
// the caller's request maps are never modified.
func (r *Redactor) Redact(data any) any {
	return r.walk(data, "")
}

// ScrubString replaces sensitive patterns in a string.
func (r *Redactor) ScrubString(input string) string {
	if input == "" {
		return ""
	}

	result := input

	if r.detector != nil {
		for _, finding := range r.detector.Detect(detect.Fragment{Raw: result}) {
			if finding.Secret == "" {
				continue
			}
			result = strings.ReplaceAll(result, finding.Secret, r.replacement(finding.Secret))
		}
	}

	for _, re := range r.patterns {
		result = re.ReplaceAllStringFunc(result, r.replacement)
	}

	return result
}

func (r *Redactor) walk(data any, path string) any {
	switch v := data.(type) {
	case string:
		if r.isPathMatch(path) {
			return r.replacement(v)
		}
		return r.ScrubString(v)

	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			next := k
			if path != "" {
				next = path + "." + k
			}
			out[k] = r.walk(val, next)
		}
		return out

	case []any:
		// Array items share their parent's path.
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = r.walk(val, path)
		}
		return out

	case []string:
		out := make([]string, len(v))
		for i, s := range v {
			out[i], _ = r.walk(s, path).(string)
		}
		return out

	default:
		return v
	}
}

func (r *Redactor) isPathMatch(path string) bool {
	if path == "" {
		return false
	}
	for _, p := range r.paths {
		if p == path || strings.HasSuffix(path, "."+p) {
			return true
		}
	}
	return false
}

func (r *Redactor) replacement(secret string) string {
	if r.hashMode {
		return r.hash(secret)
	}
	return marker
}

// hash returns a truncated HMAC-SHA256 of the secret: [hmac:<16 hex chars>].
// A high-entropy salt is needed to resist offline brute forcing.
func (r *Redactor) hash(secret string) string {
	mac := hmac.New(sha256.New, []byte(r.salt))
	mac.Write([]byte(secret))
	return fmt.Sprintf("[hmac:%s]", hex.EncodeToString(mac.Sum(nil))[:16])
}

// defaultPaths are credential keys that may appear in logged maps.
var defaultPaths = []string{
	"SecretAccessKey",
	"SessionToken",
	"secret_access_key",
	"session_token",
}

var defaultPatterns = []string{
	// AWS access key id
	`\b((?:AKIA|ABIA|ACCA|ASIA)[0-9A-Z]{16})\b`,
	// AWS secret access key assignment
	`(?i)aws_?secret_?access_?key["']?\s*[:=]\s*["']?[A-Za-z0-9/+=]{40}`,
	// Private key header
	`-----BEGIN [A-Z ]+ PRIVATE KEY-----`,
	// GitHub token
	`gh[pousr]_[A-Za-z0-9_]{36,255}`,
}
