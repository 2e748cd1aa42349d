package testkit

import (
	"fmt"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/token"
)

// CheckSpanInvariants runs a minimal set of token-span invariants on a parsed
// design file:
// 1) every recorded span is non-empty and inside the stream (EOF excluded)
// 2) child spans are contained in their parent span
// 3) design units appear in source order without overlapping
func CheckSpanInvariants(ts *token.Stream, file *ast.DesignFile) error {
	if ts == nil || file == nil {
		return fmt.Errorf("nil stream or file")
	}
	c := checker{eof: ts.EOF()}
	prevEnd := token.NoID
	for i, unit := range file.Units {
		if unit == nil {
			return fmt.Errorf("unit %d is nil", i)
		}
		if err := c.span("configuration", unit.Span); err != nil {
			return err
		}
		for _, item := range unit.Context {
			if err := c.span("context item", item.TokenSpan()); err != nil {
				return err
			}
			if item.TokenSpan().End >= unit.Span.Start {
				return fmt.Errorf("context item %v does not precede configuration %v", item.TokenSpan(), unit.Span)
			}
			if prevEnd.IsValid() && item.TokenSpan().Start <= prevEnd {
				return fmt.Errorf("context item %v overlaps previous unit ending at %d", item.TokenSpan(), prevEnd)
			}
		}
		if prevEnd.IsValid() && unit.Span.Start <= prevEnd {
			return fmt.Errorf("unit %v overlaps previous unit ending at %d", unit.Span, prevEnd)
		}
		prevEnd = unit.Span.End

		if err := c.within("entity name", unit.EntityName.Span, unit.Span); err != nil {
			return err
		}
		for _, d := range unit.Decls {
			if err := c.within("declaration", d.TokenSpan(), unit.Span); err != nil {
				return err
			}
		}
		for _, vu := range unit.VUnitBindings {
			if err := c.within("vunit binding", vu.Span, unit.Span); err != nil {
				return err
			}
		}
		if unit.Block != nil {
			if err := c.block(unit.Block, unit.Span); err != nil {
				return err
			}
		}
	}
	return nil
}

type checker struct {
	eof token.ID
}

func (c checker) span(what string, sp token.Span) error {
	if sp.Len() == 0 {
		return fmt.Errorf("%s span is empty: %v", what, sp)
	}
	if sp.End >= c.eof {
		return fmt.Errorf("%s span %v reaches EOF token %d", what, sp, c.eof)
	}
	return nil
}

func (c checker) within(what string, sp, parent token.Span) error {
	if err := c.span(what, sp); err != nil {
		return err
	}
	if sp.Start < parent.Start || sp.End > parent.End {
		return fmt.Errorf("%s span %v is outside parent span %v", what, sp, parent)
	}
	return nil
}

func (c checker) block(blk *ast.BlockConfiguration, parent token.Span) error {
	if err := c.within("block configuration", blk.Span, parent); err != nil {
		return err
	}
	if err := c.within("block specification", blk.BlockSpec.Span, blk.Span); err != nil {
		return err
	}
	for _, item := range blk.Items {
		switch it := item.(type) {
		case *ast.BlockConfiguration:
			if err := c.block(it, blk.Span); err != nil {
				return err
			}
		case *ast.ComponentConfiguration:
			if err := c.component(it, blk.Span); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unexpected configuration item %T", item)
		}
	}
	return nil
}

func (c checker) component(cc *ast.ComponentConfiguration, parent token.Span) error {
	if err := c.within("component configuration", cc.Span, parent); err != nil {
		return err
	}
	if err := c.within("component specification", cc.Spec.Span, cc.Span); err != nil {
		return err
	}
	if cc.Binding != nil {
		if err := c.within("binding indication", cc.Binding.Span, cc.Span); err != nil {
			return err
		}
		for _, m := range []*ast.MapAspect{cc.Binding.GenericMap, cc.Binding.PortMap} {
			if m == nil {
				continue
			}
			if err := c.within("map aspect", m.Span, cc.Binding.Span); err != nil {
				return err
			}
		}
	}
	for _, vu := range cc.VUnitBindings {
		if err := c.within("vunit binding", vu.Span, cc.Span); err != nil {
			return err
		}
	}
	if cc.Block != nil {
		return c.block(cc.Block, cc.Span)
	}
	return nil
}
