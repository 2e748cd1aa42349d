package ast

import "vhdlfmt/internal/token"

// ComponentSpecification is `for <Instantiation> : <ComponentName>`.
type ComponentSpecification struct {
	Span          token.Span
	Instantiation InstantiationList
	ColonToken    token.ID
	ComponentName Name
}

// ForToken returns the leading `for` keyword.
func (s *ComponentSpecification) ForToken() token.ID { return s.Span.Start }

// InstantiationList is *InstantiationLabels, *InstantiationOthers or
// *InstantiationAll.
type InstantiationList interface {
	instantiationList()
}

type InstantiationLabels struct {
	Labels []Ident
	Commas []token.ID
}

type InstantiationOthers struct {
	Token token.ID
}

type InstantiationAll struct {
	Token token.ID
}

func (*InstantiationLabels) instantiationList() {}
func (*InstantiationOthers) instantiationList() {}
func (*InstantiationAll) instantiationList()    {}

// BindingIndication is `[use <Aspect>] [generic map (...)] [port map (...)];`.
type BindingIndication struct {
	Span       token.Span // through the terminating `;`
	UseToken   token.ID   // NoID when the indication starts with a map aspect
	Aspect     EntityAspect
	GenericMap *MapAspect
	PortMap    *MapAspect
}

// SemiToken returns the terminating `;`.
func (b *BindingIndication) SemiToken() token.ID { return b.Span.End }

// EntityAspect is *EntityAspectEntity, *EntityAspectConfiguration or
// *EntityAspectOpen.
type EntityAspect interface {
	KeywordToken() token.ID
	entityAspect()
}

// EntityAspectEntity is `entity <Name>[(<Arch>)]`.
type EntityAspectEntity struct {
	Keyword     token.ID
	Name        Name
	LParenToken token.ID // NoID when no architecture is given
	Arch        token.ID
	RParenToken token.ID
}

// EntityAspectConfiguration is `configuration <Name>`.
type EntityAspectConfiguration struct {
	Keyword token.ID
	Name    Name
}

// EntityAspectOpen is `open`.
type EntityAspectOpen struct {
	Keyword token.ID
}

func (a *EntityAspectEntity) KeywordToken() token.ID        { return a.Keyword }
func (a *EntityAspectConfiguration) KeywordToken() token.ID { return a.Keyword }
func (a *EntityAspectOpen) KeywordToken() token.ID          { return a.Keyword }

func (*EntityAspectEntity) entityAspect()        {}
func (*EntityAspectConfiguration) entityAspect() {}
func (*EntityAspectOpen) entityAspect()          {}

// HasArchitecture reports whether the parenthesized architecture is present.
func (a *EntityAspectEntity) HasArchitecture() bool { return a.Arch.IsValid() }

// MapAspect is `generic map (...)` or `port map (...)`.
type MapAspect struct {
	Span     token.Span
	MapToken token.ID
	List     AssociationList
}

// KindToken returns the `generic` or `port` keyword.
func (m *MapAspect) KindToken() token.ID { return m.Span.Start }

// AssociationList is a parenthesized, comma separated element list.
type AssociationList struct {
	LParenToken token.ID
	Elements    []AssociationElement
	Commas      []token.ID
	RParenToken token.ID
}

// AssociationElement is `[<Formal> =>] <Actual>`.
type AssociationElement struct {
	Formal     *Expr
	ArrowToken token.ID
	Actual     Expr
}

// VUnitBindingIndication is `use vunit <Names>;`.
type VUnitBindingIndication struct {
	Span       token.Span // use ... ;
	VUnitToken token.ID
	Names      []Name
}

// UseToken returns the leading `use` keyword.
func (v *VUnitBindingIndication) UseToken() token.ID { return v.Span.Start }
