// Package ast holds the syntax tree of VHDL design files restricted to
// context clauses and the configuration family of declarations.
//
// Nodes never own text. Every node records the inclusive token.Span it was
// parsed from and the ids of the fixed keywords and delimiters it contains
// (its token roles), so printers can copy source tokens without recomputing
// offsets. Optional roles hold token.NoID when absent.
//
// Tagged unions (ContextItem, Declaration, ConfigurationItem,
// InstantiationList, EntityAspect) are sealed interfaces: only the types in
// this package implement them, and consumers switch over the concrete types.
package ast
