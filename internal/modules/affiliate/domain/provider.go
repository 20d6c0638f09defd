package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

type Capability string

const (
	CapabilityEligibility Capability = "eligibility"
	CapabilityLink        Capability = "link"
	CapabilityReport      Capability = "report"
)

func (c Capability) Validate() error {
	switch c {
	case CapabilityEligibility, CapabilityLink, CapabilityReport:
		return nil
	default:
		return fmt.Errorf("unknown capability: %s", c)
	}
}

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one out-of-process affiliate provider.
type Manifest struct {
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Binary       string       `json:"binary"`
	SHA256       string       `json:"sha256"`
	Enabled      bool         `json:"enabled"`
	Capabilities []Capability `json:"capabilities"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("provider name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("provider version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("provider binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("provider sha256 must be lowercase 64-char hex")
	}
	if len(m.Capabilities) == 0 {
		return fmt.Errorf("provider capabilities are required")
	}
	seen := map[Capability]struct{}{}
	for _, capability := range m.Capabilities {
		if err := capability.Validate(); err != nil {
			return err
		}
		if _, ok := seen[capability]; ok {
			return fmt.Errorf("duplicate capability: %s", capability)
		}
		seen[capability] = struct{}{}
	}
	return nil
}

func (m Manifest) HasCapability(capability Capability) bool {
	for _, c := range m.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

type Metadata struct {
	Name         string
	Version      string
	Capabilities []Capability
}

// LinkRequest carries the campaign attribution attached to a tracked link.
type LinkRequest struct {
	Campaign string
	Medium   string
	Source   string
	Content  string
}

// ClickReport is the fire-and-forget record of a tracked click.
type ClickReport struct {
	ProductID   string
	ASIN        string
	Category    string
	Price       float64
	Currency    string
	TrackedURL  string
	OriginalURL string
	Source      string
}

func (r ClickReport) Validate() error {
	if r.ProductID == "" {
		return fmt.Errorf("product id is required")
	}
	if r.OriginalURL == "" {
		return fmt.Errorf("original url is required")
	}
	return nil
}

var amazonHosts = map[string]struct{}{
	"amazon.com":   {},
	"amazon.co.uk": {},
	"amazon.de":    {},
	"amazon.fr":    {},
	"amazon.ca":    {},
	"amzn.to":      {},
	"amzn.eu":      {},
	"a.co":         {},
}

// AmazonEligible reports whether a URL points at an Amazon marketplace or
// shortlink host, including their www subdomains.
func AmazonEligible(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if _, ok := amazonHosts[host]; ok {
		return true
	}
	// Regional subdomains like smile.amazon.com.
	for known := range amazonHosts {
		if strings.HasSuffix(host, "."+known) {
			return true
		}
	}
	return false
}

var asinPattern = regexp.MustCompile(`/(?:dp|gp/product)/([A-Z0-9]{10})`)

// ExtractASIN pulls the 10-character Amazon item id out of a product URL.
// Empty when the URL carries none.
func ExtractASIN(raw string) string {
	match := asinPattern.FindStringSubmatch(raw)
	if match == nil {
		return ""
	}
	return match[1]
}
