// pkg/docs/rules.go
package docs

import (
	"regexp"
	"strings"
)

// Rule is one textual rewrite. Either Pattern or Literal is set.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Literal     string
	Replacement string
}

// Apply runs the rule over text.
func (r Rule) Apply(text string) string {
	if r.Pattern != nil {
		return r.Pattern.ReplaceAllString(text, r.Replacement)
	}
	if r.Literal == "" {
		return text
	}
	return strings.ReplaceAll(text, r.Literal, r.Replacement)
}

// Pipeline holds rewrite rules grouped by stage. Stages always run in the
// order images, links, pages: image references must be claimed before the
// generic relative-link rule sees them, and page renames only match links
// that are already absolute.
type Pipeline struct {
	Images []Rule
	Links  []Rule
	Pages  []Rule
}

// Rules returns every rule in execution order.
func (p *Pipeline) Rules() []Rule {
	rules := make([]Rule, 0, len(p.Images)+len(p.Links)+len(p.Pages))
	rules = append(rules, p.Images...)
	rules = append(rules, p.Links...)
	rules = append(rules, p.Pages...)
	return rules
}

// Apply runs all stages over text.
func (p *Pipeline) Apply(text string) string {
	for _, rule := range p.Rules() {
		text = rule.Apply(text)
	}
	return text
}

// imageRule points "(./name.ext" at the repository image directory.
func imageRule(imageDir string, extensions []string) Rule {
	quoted := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		quoted = append(quoted, regexp.QuoteMeta(strings.TrimPrefix(ext, ".")))
	}
	dir := strings.TrimSuffix(imageDir, "/")

	return Rule{
		Name:        "local-images",
		Pattern:     regexp.MustCompile(`\(\./([^/()\s]+)\.(` + strings.Join(quoted, "|") + `)\b`),
		Replacement: "(" + dir + "/${1}.${2}",
	}
}

// siteLinkRule reroutes "(./" links to the documentation site.
func siteLinkRule(siteURL string) Rule {
	return Rule{
		Name:        "site-links",
		Literal:     relativeLinkPrefix,
		Replacement: "(" + siteURL,
	}
}

// pageRule renames "<site>/.../name.md" to the generated "md_name.html".
func pageRule(siteURL string) Rule {
	return Rule{
		Name:        "html-pages",
		Pattern:     regexp.MustCompile(`(` + regexp.QuoteMeta(siteURL) + `(?:[^()\s]*/)?)([^/()\s]+)\.md\b`),
		Replacement: "${1}" + HTMLPagePrefix + "${2}.html",
	}
}
