// Package analyzer implements the component schema extraction engine:
// platform detection, syntax-tree traversal, type normalization, event
// classification, deduplication and fallback-safe schema assembly.
package analyzer

// Input is one ephemeral analysis request. SourceText takes priority; when
// only RuntimeRef is set, analysis is limited to platform detection over the
// runtime shape.
type Input struct {
	// Name is the component name the schema is keyed by.
	Name string
	// SourceText is the component's source code, if available.
	SourceText string
	// Path is the source file path when the input came from disk. The
	// extension selects the grammar; pathless inputs parse as TSX.
	Path string
	// RuntimeRef is an opaque runtime component reference. Map-shaped
	// descriptors (map[string]any) are inspected for structural markers.
	RuntimeRef any
}

// Origin identifies the extraction path that produced a candidate.
type Origin string

const (
	OriginInterface   Origin = "interface"
	OriginTypeAlias   Origin = "type-alias"
	OriginDestructure Origin = "destructure"
	OriginMarkup      Origin = "markup-attribute"
)

// propertyCandidate is a tentative property record from one extraction
// origin, prior to deduplication. Call-scoped, never retained.
type propertyCandidate struct {
	Name        string
	RawType     string
	Required    bool
	Description string
	Origin      Origin
}

// eventCandidate is a tentative event record from one extraction origin.
type eventCandidate struct {
	Name           string
	ParameterHints []string
	Description    string
	Origin         Origin
}
