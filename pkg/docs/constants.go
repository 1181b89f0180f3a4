// pkg/docs/constants.go
package docs

const (
	// Banner is prefixed to every generated README
	Banner = "\n\n<!-- THIS FILE IS AUTO-GENERATED FROM THE DOCS FRONT PAGE -->\n\n\n"

	// DefaultImageDir is where the repository keeps documentation images
	DefaultImageDir = "Documentation"

	// DefaultSiteURL is the generated documentation site
	DefaultSiteURL = "https://runevision.github.io/LayerProcGen/"

	// HTMLPagePrefix is prepended to page names by the site generator
	HTMLPagePrefix = "md_"

	relativeLinkPrefix = "(./"
)

// DefaultImageExtensions are rewritten to local paths by the local-images variant
var DefaultImageExtensions = []string{"png", "gif"}
