package hclutil

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// EvalAs evaluates expr without variables and converts the result to want.
// A null result is returned as a null value of type want and no diagnostics;
// callers decide whether null means "absent".
func EvalAs(expr hcl.Expression, want cty.Type) (cty.Value, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NullVal(want), diags
	}
	if val.IsNull() {
		return cty.NullVal(want), nil
	}
	if !val.IsWhollyKnown() {
		return cty.NullVal(want), hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unknown value",
			Detail:   "The value must be known when the configuration is loaded.",
			Subject:  expr.Range().Ptr(),
		}}
	}

	converted, err := convert.Convert(val, want)
	if err != nil {
		return cty.NullVal(want), hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Incorrect value type",
			Detail:   fmt.Sprintf("Cannot use a %s value here: %s is required.", val.Type().FriendlyName(), want.FriendlyName()),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return converted, nil
}
