package scene

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/nodecanvas/internal/geom"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	pairType  = cty.List(cty.Number)
	movesType = cty.List(pairType)
)

// newEvalContext exposes the snap size to scene expressions.
func newEvalContext(grid float64) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"grid": cty.NumberFloatVal(grid),
		},
	}
}

// evalPair evaluates a two-number expression. A missing optional attribute
// evaluates to null and yields def.
func evalPair(expr hcl.Expression, evalCtx *hcl.EvalContext, def [2]float64) ([2]float64, error) {
	if expr == nil {
		return def, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return def, diags
	}
	if val.IsNull() {
		return def, nil
	}
	pair, err := toPair(val)
	if err != nil {
		return def, fmt.Errorf("%s: %w", expr.Range(), err)
	}
	return pair, nil
}

func toPair(val cty.Value) ([2]float64, error) {
	var out [2]float64
	if !val.IsWhollyKnown() {
		return out, fmt.Errorf("value must be known")
	}
	list, err := convert.Convert(val, pairType)
	if err != nil {
		return out, fmt.Errorf("expected a list of two numbers: %w", err)
	}
	var nums []float64
	if err := gocty.FromCtyValue(list, &nums); err != nil {
		return out, fmt.Errorf("expected a list of two numbers: %w", err)
	}
	if len(nums) != 2 {
		return out, fmt.Errorf("expected a list of two numbers, got %d", len(nums))
	}
	out[0], out[1] = nums[0], nums[1]
	return out, nil
}

func evalPoint(expr hcl.Expression, evalCtx *hcl.EvalContext) (geom.Point, error) {
	p, err := evalPair(expr, evalCtx, [2]float64{})
	return geom.Pt(p[0], p[1]), err
}

func evalSize(expr hcl.Expression, evalCtx *hcl.EvalContext, def geom.Size) (geom.Size, error) {
	s, err := evalPair(expr, evalCtx, [2]float64{def.W, def.H})
	if err != nil {
		return def, err
	}
	if s[0] < 0 || s[1] < 0 {
		return def, fmt.Errorf("%s: size must not be negative", expr.Range())
	}
	return geom.Sz(s[0], s[1]), nil
}

// evalMoves evaluates a list of [dx, dy] pairs.
func evalMoves(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]geom.Point, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return nil, fmt.Errorf("%s: moves must be a known list", expr.Range())
	}
	list, err := convert.Convert(val, movesType)
	if err != nil {
		return nil, fmt.Errorf("%s: moves must be a list of [dx, dy] pairs: %w", expr.Range(), err)
	}
	var moves []geom.Point
	for it := list.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		pair, err := toPair(elem)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", expr.Range(), err)
		}
		moves = append(moves, geom.Pt(pair[0], pair[1]))
	}
	return moves, nil
}
