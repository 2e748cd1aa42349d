package ast

import "vhdlfmt/internal/token"

// DesignFile is a sequence of configuration declarations, each with its
// context clause.
type DesignFile struct {
	Units []*ConfigurationDeclaration
	EOF   token.ID
}

// ConfigurationDeclaration is
//
//	configuration <Ident> of <EntityName> is
//	    {declaration} {vunit binding}
//	    <Block>
//	end [configuration] [<ident>];
type ConfigurationDeclaration struct {
	Span          token.Span // configuration ... ; (context clause excluded)
	Context       []ContextItem
	Ident         Ident
	OfToken       token.ID
	EntityName    Name
	IsToken       token.ID
	Decls         []Declaration
	VUnitBindings []*VUnitBindingIndication
	Block         *BlockConfiguration
	EndToken      token.ID
	EndKeyword    token.ID // optional `configuration`
	EndIdent      token.ID // optional closing name
}

// ConfigurationItem is *BlockConfiguration or *ComponentConfiguration.
type ConfigurationItem interface {
	TokenSpan() token.Span
	configurationItem()
}

// BlockConfiguration is `for <BlockSpec> {use clause} {item} end for;`.
type BlockConfiguration struct {
	Span        token.Span // for ... ;
	BlockSpec   Name
	UseClauses  []*UseClause
	Items       []ConfigurationItem
	EndToken    token.ID
	EndForToken token.ID
}

// ComponentConfiguration is
//
//	<Spec> [<Binding>] {vunit binding} [<Block>] end for;
type ComponentConfiguration struct {
	Span          token.Span // for ... ;
	Spec          *ComponentSpecification
	Binding       *BindingIndication
	VUnitBindings []*VUnitBindingIndication
	Block         *BlockConfiguration
	EndToken      token.ID
	EndForToken   token.ID
}

func (c *BlockConfiguration) TokenSpan() token.Span     { return c.Span }
func (c *ComponentConfiguration) TokenSpan() token.Span { return c.Span }

func (*BlockConfiguration) configurationItem()     {}
func (*ComponentConfiguration) configurationItem() {}

// ConfigurationSpecification is the `for <spec> use ...;` form found in
// declarative parts, with an optional trailing `end for;`.
type ConfigurationSpecification struct {
	Span          token.Span
	Spec          *ComponentSpecification
	Binding       *BindingIndication
	VUnitBindings []*VUnitBindingIndication
	EndToken      token.ID // NoID when `end for;` is absent
	EndForToken   token.ID
}

// ForToken returns the `for` keyword opening a block configuration.
func (c *BlockConfiguration) ForToken() token.ID { return c.Span.Start }

// SemiToken returns the `;` closing a block configuration.
func (c *BlockConfiguration) SemiToken() token.ID { return c.Span.End }

// SemiToken returns the `;` closing a component configuration.
func (c *ComponentConfiguration) SemiToken() token.ID { return c.Span.End }
