// pkg/docs/transform.go
package docs

import (
	"fmt"
	"strings"
)

// Variant selects which README flavour to produce
type Variant string

const (
	// VariantLocalImages keeps images in the repository image directory
	VariantLocalImages Variant = "local-images"
	// VariantOnlineImages links images on the documentation site
	VariantOnlineImages Variant = "online-images"
)

// ParseVariant validates a variant name from configuration.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantLocalImages, VariantOnlineImages:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("unknown readme variant %q (want %s or %s)", s, VariantLocalImages, VariantOnlineImages)
	}
}

// Options configures the rewrite targets
type Options struct {
	SiteURL         string   // Absolute documentation site URL
	ImageDir        string   // Repository directory holding images
	ImageExtensions []string // Extensions treated as images
}

// DefaultOptions returns the documentation site settings
func DefaultOptions() Options {
	return Options{
		SiteURL:         DefaultSiteURL,
		ImageDir:        DefaultImageDir,
		ImageExtensions: append([]string(nil), DefaultImageExtensions...),
	}
}

func (o Options) withDefaults() Options {
	if o.SiteURL == "" {
		o.SiteURL = DefaultSiteURL
	}
	if !strings.HasSuffix(o.SiteURL, "/") {
		o.SiteURL += "/"
	}
	if o.ImageDir == "" {
		o.ImageDir = DefaultImageDir
	}
	if len(o.ImageExtensions) == 0 {
		o.ImageExtensions = DefaultImageExtensions
	}
	return o
}

// NewPipeline builds the rule pipeline for a variant.
func NewPipeline(variant Variant, opts Options) *Pipeline {
	opts = opts.withDefaults()

	p := &Pipeline{
		Links: []Rule{siteLinkRule(opts.SiteURL)},
		Pages: []Rule{pageRule(opts.SiteURL)},
	}
	if variant == VariantLocalImages {
		p.Images = []Rule{imageRule(opts.ImageDir, opts.ImageExtensions)}
	}
	return p
}

// Transform rewrites a documentation page into a README variant. The result
// carries the generated-file banner exactly once.
func Transform(markdown string, variant Variant, opts Options) string {
	body := strings.TrimPrefix(markdown, Banner)
	return Banner + NewPipeline(variant, opts).Apply(body)
}
