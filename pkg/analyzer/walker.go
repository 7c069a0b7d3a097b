package analyzer

import (
	"log/slog"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// walkResult accumulates candidates during one traversal. It is call-scoped:
// a fresh walker is created per analyze call so concurrent analyses never
// share state.
type walkResult struct {
	props            []propertyCandidate
	events           []eventCandidate
	defaults         map[string]string
	supportsChildren bool
}

// walker performs a single depth-first traversal of a parsed tree and
// dispatches per node kind to extractors. Nodes are treated as a black box:
// read, never mutated. An unrecognized node kind is skipped; a panic inside
// one extractor is recovered, logged, and the walk continues.
type walker struct {
	source    []byte
	component string
	logger    *slog.Logger
	res       walkResult
}

func walkTree(root *ts.Node, source []byte, component string, logger *slog.Logger) *walkResult {
	w := &walker{
		source:    source,
		component: component,
		logger:    logger,
	}
	w.res.defaults = make(map[string]string)
	w.walk(root)
	return &w.res
}

func (w *walker) walk(node *ts.Node) {
	if node == nil {
		return
	}

	switch node.Kind() {
	case "interface_declaration":
		w.runExtractor("interface", node, w.extractInterface)
	case "type_alias_declaration":
		w.runExtractor("type-alias", node, w.extractTypeAlias)
	case "function_declaration", "function_expression", "arrow_function":
		w.runExtractor("destructure", node, w.extractDestructuredParams)
	case "jsx_element":
		w.runExtractor("markup", node, w.observeElementChildren)
	case "jsx_opening_element", "jsx_self_closing_element":
		w.runExtractor("markup", node, w.extractMarkupAttributes)
	}

	for i := uint(0); i < uint(node.ChildCount()); i++ {
		w.walk(node.Child(i))
	}
}

// runExtractor isolates one extractor: a panic while processing a single
// node must never abort the whole walk.
func (w *walker) runExtractor(stage string, node *ts.Node, fn func(*ts.Node)) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Warn("extractor failed, skipping node",
				"component", w.component,
				"stage", stage,
				"node_kind", node.Kind(),
				"error", r)
		}
	}()
	fn(node)
}

// extractInterface handles interface-like declarations whose body is a
// property/method list.
func (w *walker) extractInterface(decl *ts.Node) {
	body := findChildByKind(decl, "interface_body")
	if body == nil {
		body = findChildByKind(decl, "object_type")
	}
	if body == nil {
		return
	}
	w.extractDeclarationBody(body, OriginInterface)
}

// extractTypeAlias handles type aliases with an object-literal body,
// including the object part of an intersection type.
func (w *walker) extractTypeAlias(decl *ts.Node) {
	value := decl.ChildByFieldName("value")
	if value == nil {
		return
	}
	switch value.Kind() {
	case "object_type":
		w.extractDeclarationBody(value, OriginTypeAlias)
	case "intersection_type":
		for i := uint(0); i < uint(value.ChildCount()); i++ {
			child := value.Child(i)
			if child.Kind() == "object_type" {
				w.extractDeclarationBody(child, OriginTypeAlias)
			}
		}
	}
}

// extractDeclarationBody walks an interface_body or object_type node. Each
// property signature becomes a property candidate unless its name matches
// the event convention; method signatures only contribute events.
func (w *walker) extractDeclarationBody(body *ts.Node, origin Origin) {
	for i := uint(0); i < uint(body.ChildCount()); i++ {
		child := body.Child(i)

		switch child.Kind() {
		case "property_signature":
			name, required, typeNode := w.propertySignature(child)
			if name == "" {
				continue
			}
			desc := w.precedingComment(body, i)
			if IsEventName(name) {
				w.res.events = append(w.res.events, eventCandidate{
					Name:           NormalizeEventName(name),
					ParameterHints: w.parameterNames(typeNode),
					Description:    desc,
					Origin:         origin,
				})
				continue
			}
			rawType := ""
			if typeNode != nil {
				rawType = typeNode.Utf8Text(w.source)
			}
			w.res.props = append(w.res.props, propertyCandidate{
				Name:        name,
				RawType:     rawType,
				Required:    required,
				Description: desc,
				Origin:      origin,
			})

		case "method_signature":
			nameNode := child.ChildByFieldName("name")
			if nameNode == nil {
				continue
			}
			name := nameNode.Utf8Text(w.source)
			if !IsEventName(name) {
				continue
			}
			w.res.events = append(w.res.events, eventCandidate{
				Name:           NormalizeEventName(name),
				ParameterHints: w.parameterNames(child),
				Description:    w.precedingComment(body, i),
				Origin:         origin,
			})
		}
	}
}

// propertySignature returns the name, required flag and type node of a
// property_signature. The type node is the annotation payload, ":" excluded.
func (w *walker) propertySignature(sig *ts.Node) (string, bool, *ts.Node) {
	nameNode := sig.ChildByFieldName("name")
	if nameNode == nil {
		return "", false, nil
	}
	name := nameNode.Utf8Text(w.source)

	required := true
	for i := uint(0); i < uint(sig.ChildCount()); i++ {
		if sig.Child(i).Kind() == "?" {
			required = false
			break
		}
	}

	var typeNode *ts.Node
	if anno := sig.ChildByFieldName("type"); anno != nil {
		// type_annotation wraps ":" plus the actual type node.
		for i := uint(0); i < uint(anno.ChildCount()); i++ {
			child := anno.Child(i)
			if child.Kind() != ":" {
				typeNode = child
				break
			}
		}
	}

	return name, required, typeNode
}

// parameterNames extracts parameter hint names from a function-typed node
// (a function_type annotation or a method_signature).
func (w *walker) parameterNames(node *ts.Node) []string {
	if node == nil {
		return nil
	}
	params := node.ChildByFieldName("parameters")
	if params == nil {
		params = findChildByKind(node, "formal_parameters")
	}
	if params == nil {
		return nil
	}

	var names []string
	for i := uint(0); i < uint(params.ChildCount()); i++ {
		child := params.Child(i)
		switch child.Kind() {
		case "required_parameter", "optional_parameter":
			if pattern := child.ChildByFieldName("pattern"); pattern != nil {
				names = append(names, pattern.Utf8Text(w.source))
			}
		case "identifier":
			names = append(names, child.Utf8Text(w.source))
		}
	}
	return names
}

// extractDestructuredParams handles functions whose first parameter is an
// object-destructuring pattern. Each bound name becomes a property candidate
// with unknown raw type; rest/spread bindings are not required. Default
// assignments are collected separately and applied after deduplication.
func (w *walker) extractDestructuredParams(fnNode *ts.Node) {
	params := fnNode.ChildByFieldName("parameters")
	if params == nil {
		return
	}

	var firstParam *ts.Node
	for i := uint(0); i < uint(params.ChildCount()); i++ {
		child := params.Child(i)
		if child.Kind() == "required_parameter" || child.Kind() == "optional_parameter" {
			firstParam = child
			break
		}
	}
	if firstParam == nil {
		return
	}

	pattern := firstParam.ChildByFieldName("pattern")
	if pattern == nil {
		pattern = findChildByKind(firstParam, "object_pattern")
	}
	if pattern == nil || pattern.Kind() != "object_pattern" {
		return
	}

	for i := uint(0); i < uint(pattern.ChildCount()); i++ {
		child := pattern.Child(i)

		switch child.Kind() {
		case "shorthand_property_identifier_pattern":
			w.addBoundName(child.Utf8Text(w.source), true)

		case "object_assignment_pattern", "assignment_pattern":
			left := child.ChildByFieldName("left")
			if left == nil {
				continue
			}
			name := left.Utf8Text(w.source)
			if right := child.ChildByFieldName("right"); right != nil {
				w.res.defaults[name] = right.Utf8Text(w.source)
			}
			w.addBoundName(name, true)

		case "pair_pattern":
			key := child.ChildByFieldName("key")
			if key == nil {
				continue
			}
			name := key.Utf8Text(w.source)
			if value := child.ChildByFieldName("value"); value != nil &&
				(value.Kind() == "assignment_pattern" || value.Kind() == "object_assignment_pattern") {
				if right := value.ChildByFieldName("right"); right != nil {
					w.res.defaults[name] = right.Utf8Text(w.source)
				}
			}
			w.addBoundName(name, true)

		case "rest_pattern":
			if inner := findChildByKind(child, "identifier"); inner != nil {
				w.addBoundName(inner.Utf8Text(w.source), false)
			}
		}
	}
}

// addBoundName records one destructured binding, routing event-shaped names
// to the event list so they never reach prop consideration.
func (w *walker) addBoundName(name string, required bool) {
	if name == "" {
		return
	}
	if IsEventName(name) {
		w.res.events = append(w.res.events, eventCandidate{
			Name:   NormalizeEventName(name),
			Origin: OriginDestructure,
		})
		return
	}
	w.res.props = append(w.res.props, propertyCandidate{
		Name:     name,
		Required: required,
		Origin:   OriginDestructure,
	})
}

// extractMarkupAttributes handles element attributes. Names matching the
// event convention become event candidates; ordinary attributes are not
// treated as property candidates since their runtime value type cannot be
// inferred from markup alone.
func (w *walker) extractMarkupAttributes(element *ts.Node) {
	for i := uint(0); i < uint(element.ChildCount()); i++ {
		attr := element.Child(i)
		if attr.Kind() != "jsx_attribute" {
			continue
		}
		nameNode := attr.Child(0)
		if nameNode == nil {
			continue
		}
		name := nameNode.Utf8Text(w.source)
		if !IsEventName(name) {
			continue
		}
		w.res.events = append(w.res.events, eventCandidate{
			Name:   NormalizeEventName(name),
			Origin: OriginMarkup,
		})
	}
}

// observeElementChildren flips supportsChildren when a markup element has at
// least one non-whitespace child between its opening and closing tags.
func (w *walker) observeElementChildren(element *ts.Node) {
	if w.res.supportsChildren {
		return
	}
	for i := uint(0); i < uint(element.ChildCount()); i++ {
		child := element.Child(i)
		switch child.Kind() {
		case "jsx_opening_element", "jsx_closing_element":
			continue
		case "jsx_text":
			if strings.TrimSpace(child.Utf8Text(w.source)) != "" {
				w.res.supportsChildren = true
				return
			}
		default:
			if child.IsNamed() {
				w.res.supportsChildren = true
				return
			}
		}
	}
}

// precedingComment returns the JSDoc/line comment immediately before the
// body child at index i, if any.
func (w *walker) precedingComment(body *ts.Node, index uint) string {
	if index == 0 {
		return ""
	}
	for i := int(index) - 1; i >= 0; i-- {
		child := body.Child(uint(i))
		if child == nil {
			return ""
		}
		switch child.Kind() {
		case "comment":
			return cleanComment(child.Utf8Text(w.source))
		case "property_signature", "method_signature":
			// The comment belongs to the previous member.
			return ""
		}
	}
	return ""
}

// cleanComment strips comment markers and tag lines from a JSDoc or line
// comment, returning the description text.
func cleanComment(comment string) string {
	comment = strings.TrimSpace(comment)
	if strings.HasPrefix(comment, "//") {
		return strings.TrimSpace(strings.TrimPrefix(comment, "//"))
	}
	comment = strings.TrimPrefix(comment, "/**")
	comment = strings.TrimPrefix(comment, "/*")
	comment = strings.TrimSuffix(comment, "*/")

	var parts []string
	for _, line := range strings.Split(comment, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
		if line == "" || strings.HasPrefix(line, "@") {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

func findChildByKind(node *ts.Node, kind string) *ts.Node {
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		switch {
		case strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`),
			strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'"),
			strings.HasPrefix(s, "`") && strings.HasSuffix(s, "`"):
			return s[1 : len(s)-1]
		}
	}
	return s
}
