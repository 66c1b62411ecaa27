package hclconf

import (
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// exprValue evaluates an expression with no variables in scope. Literals
// decode to plain Go values; anything else falls back to raw source text.
func exprValue(expr hclsyntax.Expression, src []byte) any {
	val, diags := expr.Value(nil)
	if diags.HasErrors() || !val.IsWhollyKnown() {
		return rawExprText(expr, src)
	}
	return ctyToGo(val)
}

func ctyToGo(val cty.Value) any {
	if val.IsNull() {
		return nil
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString()
	case ty == cty.Bool:
		return val.True()
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		items := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			items = append(items, ctyToGo(elem))
		}
		return items
	case ty.IsObjectType() || ty.IsMapType():
		m := make(map[string]any, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			m[key.AsString()] = ctyToGo(elem)
		}
		return m
	default:
		return nil
	}
}

func rawExprText(expr hclsyntax.Expression, src []byte) string {
	rng := expr.Range()
	if rng.Start.Byte < 0 || rng.End.Byte > len(src) || rng.Start.Byte > rng.End.Byte {
		return ""
	}
	return string(src[rng.Start.Byte:rng.End.Byte])
}
