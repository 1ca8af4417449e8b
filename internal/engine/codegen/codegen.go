// Package codegen renders the unexpire feature definitions, their declarations, and the flag
// table fragment from a set of milestones.
package codegen

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"go.trai.ch/unexpire/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	featuresImplTemplate   = "features_impl.tmpl"
	featuresHeaderTemplate = "features_header.tmpl"
	flagsFragmentTemplate  = "flags_fragment.tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("codegen").ParseFS(templateFS, "templates/*.tmpl"))

// Options configures the rendered output.
type Options struct {
	// Program is written into the "generated by" banner of the implementation and header units.
	Program string
	// HeaderInclude is the logical include path of the header unit.
	HeaderInclude string
	// Namespace encloses every generated symbol.
	Namespace string
}

// DefaultOptions returns Options matching the stock layout for the given program name.
func DefaultOptions(program string) Options {
	return Options{
		Program:       program,
		HeaderInclude: domain.DefaultHeaderInclude,
		Namespace:     domain.DefaultNamespace,
	}
}

// Generator renders the three generated fragments.
// It holds no state besides its options and is safe for concurrent use.
type Generator struct {
	opts Options
}

// NewGenerator creates a new Generator.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

type templateData struct {
	Program       string
	HeaderInclude string
	Namespace     string
	Guard         string
	Milestones    domain.MilestoneSet
}

// FeaturesImpl renders the implementation unit: one feature definition per milestone and the
// lookup function mapping a milestone to its feature.
func (g *Generator) FeaturesImpl(set domain.MilestoneSet) ([]byte, error) {
	return g.render(featuresImplTemplate, set)
}

// FeaturesHeader renders the header unit declaring the features and the lookup function.
func (g *Generator) FeaturesHeader(set domain.MilestoneSet) ([]byte, error) {
	return g.render(featuresHeaderTemplate, set)
}

// FlagsFragment renders one flag table entry per milestone, separated by blank lines.
func (g *Generator) FlagsFragment(set domain.MilestoneSet) ([]byte, error) {
	return g.render(flagsFragmentTemplate, set)
}

// Artifacts renders all three fragments and pairs them with their destinations.
func (g *Generator) Artifacts(set domain.MilestoneSet, paths domain.OutputPaths) ([]domain.Artifact, error) {
	impl, err := g.FeaturesImpl(set)
	if err != nil {
		return nil, err
	}
	header, err := g.FeaturesHeader(set)
	if err != nil {
		return nil, err
	}
	fragment, err := g.FlagsFragment(set)
	if err != nil {
		return nil, err
	}

	return []domain.Artifact{
		{Kind: domain.ArtifactFeaturesImpl, Path: paths.FeaturesImpl, Content: impl},
		{Kind: domain.ArtifactFeaturesHeader, Path: paths.FeaturesHeader, Content: header},
		{Kind: domain.ArtifactFlagsFragment, Path: paths.FlagsFragment, Content: fragment},
	}, nil
}

func (g *Generator) render(name string, set domain.MilestoneSet) ([]byte, error) {
	data := templateData{
		Program:       g.opts.Program,
		HeaderInclude: g.opts.HeaderInclude,
		Namespace:     g.opts.Namespace,
		Guard:         IncludeGuard(g.opts.HeaderInclude),
		Milestones:    set,
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "template", name)
	}
	return buf.Bytes(), nil
}

// IncludeGuard derives the include guard token for a header from its logical path:
// GEN_, the path upper-cased with every byte other than a letter or digit replaced by an
// underscore, and a trailing underscore.
func IncludeGuard(headerPath string) string {
	var b strings.Builder
	b.Grow(len("GEN_") + len(headerPath) + 1)
	b.WriteString("GEN_")
	for i := 0; i < len(headerPath); i++ {
		c := headerPath[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	b.WriteByte('_')
	return b.String()
}
