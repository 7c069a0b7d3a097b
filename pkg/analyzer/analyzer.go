package analyzer

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/propspec/propspec/pkg/parser"
	"github.com/propspec/propspec/pkg/schema"
)

// ErrUnparseable reports input that cannot be turned into a traversable tree.
var ErrUnparseable = errors.New("source cannot be parsed into a traversable tree")

// Analyzer assembles component schemas. It is stateless across calls: the
// only fields are injected collaborators, and every candidate buffer is
// call-scoped, so concurrent Analyze calls never interleave.
type Analyzer struct {
	parsers *parser.Manager
	logger  *slog.Logger
}

// New creates an Analyzer backed by the given parser manager.
func New(parsers *parser.Manager, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{parsers: parsers, logger: logger}
}

// Analyze extracts a schema from component source text or a runtime
// reference. It is a total function: it never panics past this boundary and
// always returns a structurally valid schema, minimally the fallback.
func (a *Analyzer) Analyze(input Input) (out schema.Schema) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("analysis failed, returning fallback schema",
				"component", input.Name,
				"stage", "assemble",
				"error", r)
			out = schema.Fallback(input.Name)
		}
	}()

	sch, stage, err := a.analyze(input)
	if err != nil {
		a.logger.Warn("analysis failed, returning fallback schema",
			"component", input.Name,
			"stage", stage,
			"error", err)
		return schema.Fallback(input.Name)
	}
	return sch
}

func (a *Analyzer) analyze(input Input) (schema.Schema, string, error) {
	if input.SourceText == "" {
		if input.RuntimeRef == nil {
			return schema.Schema{}, "input", fmt.Errorf("no source text or runtime reference: %w", ErrUnparseable)
		}
		return a.analyzeRuntime(input), "", nil
	}

	platform := DetectPlatform(input.SourceText)

	source := []byte(input.SourceText)
	tree, err := a.parseSource(source, input.Path)
	if err != nil {
		return schema.Schema{}, "parse", err
	}
	defer tree.Close()

	root := tree.RootNode()
	if unparseable(root) {
		return schema.Schema{}, "parse", ErrUnparseable
	}

	res := walkTree(root, source, input.Name, a.logger)

	props := dedupeProps(res.props)
	events := dedupeEvents(res.events)

	propDefs := make([]schema.PropertyDefinition, 0, len(props))
	for _, c := range props {
		def := schema.PropertyDefinition{
			Name:        c.Name,
			Type:        MapType(c.RawType),
			Required:    c.Required,
			Description: c.Description,
		}
		if v, ok := res.defaults[c.Name]; ok {
			def.DefaultValue = defaultValue(v)
		}
		propDefs = append(propDefs, def)
	}

	eventDefs := make([]schema.EventDefinition, 0, len(events))
	for _, c := range events {
		params := c.ParameterHints
		if params == nil {
			params = []string{}
		}
		eventDefs = append(eventDefs, schema.EventDefinition{
			Name:        c.Name,
			Parameters:  params,
			Description: c.Description,
		})
	}

	return schema.Schema{
		Name:             input.Name,
		Platform:         platform,
		Props:            propDefs,
		Events:           eventDefs,
		SupportsChildren: res.supportsChildren,
		Description:      "analyzed from source",
	}, "", nil
}

// defaultValue types a default expression by its literal form: quoted
// literals become strings, boolean and numeric literals their Go values
// (float64 for numbers, matching JSON round-trips), anything else the raw
// expression text.
func defaultValue(raw string) any {
	raw = strings.TrimSpace(raw)
	if unquoted := unquote(raw); unquoted != raw {
		return unquoted
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// parseSource picks the grammar by file extension when the input carries a
// path; pathless source text parses under TSX, a practical superset for the
// accepted inputs. Pure TS sources with angle-bracket type assertions need
// the extension to reach the non-JSX grammar.
func (a *Analyzer) parseSource(source []byte, path string) (*ts.Tree, error) {
	if path != "" && parser.DetectLanguage(path) != parser.LanguageUnknown {
		return a.parsers.ParseFile(source, path)
	}
	return a.parsers.Parse(source, parser.LanguageTypeScript, true)
}

// analyzeRuntime handles inputs carrying only a runtime reference: platform
// detection over the runtime shape, no prop or event extraction.
func (a *Analyzer) analyzeRuntime(input Input) schema.Schema {
	return schema.Schema{
		Name:             input.Name,
		Platform:         DetectRuntimePlatform(input.RuntimeRef),
		Props:            []schema.PropertyDefinition{},
		Events:           []schema.EventDefinition{},
		SupportsChildren: false,
		Description:      "analyzed from runtime reference",
	}
}

// unparseable reports whether a root node is too broken to walk: the tree
// has errors and every named child is an ERROR node. Partial trees with
// recoverable errors are still walked.
func unparseable(root *ts.Node) bool {
	if !root.HasError() {
		return false
	}
	total := uint(root.NamedChildCount())
	if total == 0 {
		return true
	}
	for i := uint(0); i < total; i++ {
		child := root.NamedChild(i)
		if child != nil && child.Kind() != "ERROR" {
			return false
		}
	}
	return true
}
