package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

// TreeNode is one node of the design-tree dump.
type TreeNode struct {
	Type     string      `json:"type"`
	Text     string      `json:"text,omitempty"`
	Span     source.Span `json:"span"`
	Children []*TreeNode `json:"children,omitempty"`
}

type treeBuilder struct {
	ts *token.Stream
}

// BuildDesignTree converts a parsed design file into TreeNodes.
func BuildDesignTree(ts *token.Stream, file *ast.DesignFile) *TreeNode {
	b := treeBuilder{ts: ts}
	root := &TreeNode{Type: "DesignFile"}
	if ts.File != nil {
		root.Text = ts.File.Path
	}
	if eof, ok := ts.Get(ts.EOF()); ok {
		root.Span = source.Span{File: eof.Span.File, End: eof.Span.End}
	}
	for _, unit := range file.Units {
		root.Children = append(root.Children, b.configuration(unit))
	}
	return root
}

func (b treeBuilder) sourceSpan(sp token.Span) source.Span {
	first, ok1 := b.ts.Get(sp.Start)
	last, ok2 := b.ts.Get(sp.End)
	if !ok1 || !ok2 {
		return source.Span{}
	}
	return first.Span.Cover(last.Span)
}

// text returns the source slice of sp with runs of whitespace collapsed.
func (b treeBuilder) text(sp token.Span) string {
	ss := b.sourceSpan(sp)
	if b.ts.File == nil || ss.End <= ss.Start || int(ss.End) > len(b.ts.File.Content) {
		return ""
	}
	return strings.Join(strings.Fields(string(b.ts.File.Content[ss.Start:ss.End])), " ")
}

func (b treeBuilder) node(typ string, sp token.Span, children ...*TreeNode) *TreeNode {
	return &TreeNode{Type: typ, Span: b.sourceSpan(sp), Children: children}
}

func (b treeBuilder) leaf(typ string, sp token.Span) *TreeNode {
	n := b.node(typ, sp)
	n.Text = b.text(sp)
	return n
}

func (b treeBuilder) tokenLeaf(typ string, id token.ID) *TreeNode {
	return b.leaf(typ, token.NewSpan(id, id))
}

func (b treeBuilder) configuration(cfg *ast.ConfigurationDeclaration) *TreeNode {
	n := b.node("Configuration", cfg.Span)
	for _, item := range cfg.Context {
		n.Children = append(n.Children, b.contextItem(item))
	}
	n.Children = append(n.Children,
		b.tokenLeaf("Name", cfg.Ident.Token),
		b.leaf("Entity", cfg.EntityName.Span),
	)
	for _, d := range cfg.Decls {
		n.Children = append(n.Children, b.declaration(d))
	}
	for _, vu := range cfg.VUnitBindings {
		n.Children = append(n.Children, b.leaf("VUnitBinding", vu.Span))
	}
	if cfg.Block != nil {
		n.Children = append(n.Children, b.block(cfg.Block))
	}
	return n
}

func (b treeBuilder) contextItem(item ast.ContextItem) *TreeNode {
	switch it := item.(type) {
	case *ast.LibraryClause:
		return b.leaf("LibraryClause", it.Span)
	case *ast.UseClause:
		return b.leaf("UseClause", it.Span)
	case *ast.ContextReference:
		return b.leaf("ContextReference", it.Span)
	}
	return &TreeNode{Type: fmt.Sprintf("%T", item)}
}

func (b treeBuilder) declaration(d ast.Declaration) *TreeNode {
	switch it := d.(type) {
	case *ast.UseClause:
		return b.leaf("UseClause", it.Span)
	case *ast.AttributeSpecification:
		return b.leaf("AttributeSpecification", it.Span)
	case *ast.GroupDeclaration:
		return b.leaf("GroupDeclaration", it.Span)
	}
	return &TreeNode{Type: fmt.Sprintf("%T", d)}
}

func (b treeBuilder) block(blk *ast.BlockConfiguration) *TreeNode {
	n := b.node("BlockConfiguration", blk.Span, b.leaf("BlockSpec", blk.BlockSpec.Span))
	for _, uc := range blk.UseClauses {
		n.Children = append(n.Children, b.leaf("UseClause", uc.Span))
	}
	for _, item := range blk.Items {
		switch it := item.(type) {
		case *ast.BlockConfiguration:
			n.Children = append(n.Children, b.block(it))
		case *ast.ComponentConfiguration:
			n.Children = append(n.Children, b.component(it))
		}
	}
	return n
}

func (b treeBuilder) component(cc *ast.ComponentConfiguration) *TreeNode {
	n := b.node("ComponentConfiguration", cc.Span, b.leaf("ComponentSpecification", cc.Spec.Span))
	if cc.Binding != nil {
		n.Children = append(n.Children, b.binding(cc.Binding))
	}
	for _, vu := range cc.VUnitBindings {
		n.Children = append(n.Children, b.leaf("VUnitBinding", vu.Span))
	}
	if cc.Block != nil {
		n.Children = append(n.Children, b.block(cc.Block))
	}
	return n
}

// ConfigurationSpecificationTree builds the tree of a standalone
// configuration specification.
func ConfigurationSpecificationTree(ts *token.Stream, cs *ast.ConfigurationSpecification) *TreeNode {
	b := treeBuilder{ts: ts}
	n := b.node("ConfigurationSpecification", cs.Span, b.leaf("ComponentSpecification", cs.Spec.Span))
	if cs.Binding != nil {
		n.Children = append(n.Children, b.binding(cs.Binding))
	}
	for _, vu := range cs.VUnitBindings {
		n.Children = append(n.Children, b.leaf("VUnitBinding", vu.Span))
	}
	return n
}

func (b treeBuilder) binding(bi *ast.BindingIndication) *TreeNode {
	n := b.node("BindingIndication", bi.Span)
	switch a := bi.Aspect.(type) {
	case *ast.EntityAspectEntity:
		end := a.Name.Span.End
		if a.HasArchitecture() {
			end = a.RParenToken
		}
		n.Children = append(n.Children, b.leaf("EntityAspect", token.NewSpan(a.Keyword, end)))
	case *ast.EntityAspectConfiguration:
		n.Children = append(n.Children, b.leaf("ConfigurationAspect", token.NewSpan(a.Keyword, a.Name.Span.End)))
	case *ast.EntityAspectOpen:
		n.Children = append(n.Children, b.tokenLeaf("OpenAspect", a.Keyword))
	}
	for _, m := range []*ast.MapAspect{bi.GenericMap, bi.PortMap} {
		if m != nil {
			n.Children = append(n.Children, b.mapAspect(m))
		}
	}
	return n
}

func (b treeBuilder) mapAspect(m *ast.MapAspect) *TreeNode {
	typ := "PortMap"
	if b.ts.Kind(m.KindToken()) == token.KwGeneric {
		typ = "GenericMap"
	}
	n := b.node(typ, m.Span)
	for _, el := range m.List.Elements {
		assoc := &TreeNode{Type: "Association"}
		start := el.Actual.Span.Start
		if el.Formal != nil {
			assoc.Children = append(assoc.Children, b.leaf("Formal", el.Formal.Span))
			start = el.Formal.Span.Start
		}
		assoc.Children = append(assoc.Children, b.leaf("Actual", el.Actual.Span))
		assoc.Span = b.sourceSpan(token.NewSpan(start, el.Actual.Span.End))
		n.Children = append(n.Children, assoc)
	}
	return n
}

// FormatTreePretty prints node as an indented tree.
func FormatTreePretty(w io.Writer, node *TreeNode, fs *source.FileSet) error {
	var b strings.Builder
	writeTreeLine(&b, node, fs)
	writeTreeChildren(&b, node.Children, fs, "")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTreeChildren(b *strings.Builder, children []*TreeNode, fs *source.FileSet, prefix string) {
	for i, child := range children {
		last := i == len(children)-1
		if last {
			b.WriteString(prefix + "└─ ")
		} else {
			b.WriteString(prefix + "├─ ")
		}
		writeTreeLine(b, child, fs)
		next := prefix + "│  "
		if last {
			next = prefix + "   "
		}
		writeTreeChildren(b, child.Children, fs, next)
	}
}

func writeTreeLine(b *strings.Builder, node *TreeNode, fs *source.FileSet) {
	b.WriteString(node.Type)
	if node.Text != "" {
		fmt.Fprintf(b, " %q", node.Text)
	}
	fmt.Fprintf(b, " (span: %s)\n", formatSpan(node.Span, fs))
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs == nil {
		return fmt.Sprintf("%d-%d", span.Start, span.End)
	}
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

// FormatTreeJSON prints node as JSON.
func FormatTreeJSON(w io.Writer, node *TreeNode) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(node)
}
