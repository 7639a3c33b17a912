// parser.go
package bindgen

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

var (
	numericLiteral = regexp.MustCompile(`^(0[xX][0-9a-fA-F]+|[0-9]+)[uUlL]*$`)
	cComment       = regexp.MustCompile(`/\*.*?\*/|//.*$`)
)

// header holds the declarations found in one file
type header struct {
	path      string
	includes  []include
	constants []Constant
	functions []Function
	hasError  bool
}

type include struct {
	path   string
	system bool // <...> rather than "..."
}

// headerParser wraps a tree-sitter C parser
type headerParser struct {
	parser *sitter.Parser
}

func newHeaderParser() (*headerParser, error) {
	parser := sitter.NewParser()
	if err := parser.SetLanguage(sitter.NewLanguage(tree_sitter_c.Language())); err != nil {
		parser.Close()
		return nil, fmt.Errorf("loading C grammar: %w", err)
	}
	return &headerParser{parser: parser}, nil
}

func (p *headerParser) Close() {
	p.parser.Close()
}

// parseFile reads and parses one header
func (p *headerParser) parseFile(path string) (*header, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return p.parse(path, src)
}

func (p *headerParser) parse(path string, src []byte) (*header, error) {
	src = stripSource(src)

	tree := p.parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("parsing %s: no syntax tree", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	h := &header{
		path:     path,
		hasError: root.HasError(),
	}
	visit(root, src, h)
	return h, nil
}

// visit walks every node, descending through conditionals and error
// recovery nodes so guarded declarations are still found.
func visit(n *sitter.Node, src []byte, h *header) {
	switch n.Kind() {
	case "preproc_include":
		if inc, ok := parseInclude(n, src); ok {
			h.includes = append(h.includes, inc)
		}
		return
	case "preproc_def":
		if c, ok := parseDefine(n, src); ok {
			h.constants = append(h.constants, c)
		}
		return
	case "declaration":
		if f, ok := parseFunction(n, src); ok {
			h.functions = append(h.functions, f)
		}
		return
	case "preproc_function_def", "type_definition", "comment", "function_definition":
		return
	}

	for i := uint(0); i < n.NamedChildCount(); i++ {
		if child := n.NamedChild(i); child != nil {
			visit(child, src, h)
		}
	}
}

func parseInclude(n *sitter.Node, src []byte) (include, bool) {
	path := n.ChildByFieldName("path")
	if path == nil {
		return include{}, false
	}
	text := strings.TrimSpace(path.Utf8Text(src))

	switch path.Kind() {
	case "system_lib_string":
		return include{path: strings.Trim(text, "<>"), system: true}, true
	case "string_literal":
		return include{path: strings.Trim(text, `"`)}, true
	}
	// #include MACRO
	return include{}, false
}

func parseDefine(n *sitter.Node, src []byte) (Constant, bool) {
	nameNode := n.ChildByFieldName("name")
	valueNode := n.ChildByFieldName("value")
	if nameNode == nil || valueNode == nil {
		return Constant{}, false
	}

	name := nameNode.Utf8Text(src)
	if !strings.HasPrefix(name, "GL_") {
		return Constant{}, false
	}

	value := strings.TrimSpace(cComment.ReplaceAllString(valueNode.Utf8Text(src), ""))
	m := numericLiteral.FindStringSubmatch(value)
	if m == nil {
		return Constant{}, false
	}
	return Constant{Name: name, Value: m[1]}, true
}

func parseFunction(n *sitter.Node, src []byte) (Function, bool) {
	fd := functionDeclarator(n.ChildByFieldName("declarator"))
	if fd == nil {
		return Function{}, false
	}

	nameNode := fd.ChildByFieldName("declarator")
	if nameNode == nil || nameNode.Kind() != "identifier" {
		return Function{}, false
	}
	name := nameNode.Utf8Text(src)
	if !isEntryPoint(name) {
		return Function{}, false
	}

	f := Function{
		Name:   name,
		Result: parseCType(string(src[n.StartByte():fd.StartByte()])),
	}

	params := fd.ChildByFieldName("parameters")
	if params == nil {
		return f, true
	}
	for i := uint(0); i < params.NamedChildCount(); i++ {
		child := params.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "parameter_declaration":
			p := parseParam(child, src)
			if p.Name == "" && p.Type.IsVoid() {
				continue // (void)
			}
			f.Params = append(f.Params, p)
		case "variadic_parameter":
			f.Variadic = true
		}
	}
	return f, true
}

// functionDeclarator finds the function_declarator under pointer and
// parenthesized declarators
func functionDeclarator(n *sitter.Node) *sitter.Node {
	for n != nil {
		switch n.Kind() {
		case "function_declarator":
			return n
		case "pointer_declarator", "parenthesized_declarator", "attributed_declarator":
			next := n.ChildByFieldName("declarator")
			if next == nil && n.NamedChildCount() > 0 {
				next = n.NamedChild(n.NamedChildCount() - 1)
			}
			n = next
		default:
			return nil
		}
	}
	return nil
}

func parseParam(n *sitter.Node, src []byte) Param {
	ident := firstIdentifier(n.ChildByFieldName("declarator"))
	if ident == nil {
		return Param{Type: parseCType(n.Utf8Text(src))}
	}

	spelling := string(src[n.StartByte():ident.StartByte()]) + string(src[ident.EndByte():n.EndByte()])
	return Param{
		Name: ident.Utf8Text(src),
		Type: parseCType(spelling),
	}
}

func firstIdentifier(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}
	if n.Kind() == "identifier" {
		return n
	}
	for i := uint(0); i < n.NamedChildCount(); i++ {
		if found := firstIdentifier(n.NamedChild(i)); found != nil {
			return found
		}
	}
	return nil
}

// isEntryPoint matches glFoo but not glue or gl_foo
func isEntryPoint(name string) bool {
	return len(name) > 2 && strings.HasPrefix(name, "gl") && unicode.IsUpper(rune(name[2]))
}
