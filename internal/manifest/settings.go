package manifest

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/gridci/internal/model"
)

// decodeSettings evaluates the free-form attributes of a settings block and
// applies them over the defaults. Attribute names form a closed set; an
// unknown name is an error rather than a silent no-op, since a typoed
// setting that does nothing is the kind of bug that only surfaces in a
// broken pipeline much later.
func decodeSettings(block *settingsBlock, out *model.Settings) error {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("reading settings attributes: %w", diags)
	}

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("evaluating setting %q: %w", name, diags)
		}
		if val.IsNull() {
			return fmt.Errorf("setting %q must not be null", name)
		}

		var err error
		switch name {
		case "log_dir":
			err = asString(val, &out.LogDir)
		case "build_dir":
			err = asString(val, &out.BuildDir)
		case "walltime":
			err = asString(val, &out.Resources.Walltime)
		case "cuda_compute":
			err = asString(val, &out.Resources.CUDACompute)
		case "cores":
			err = gocty.FromCtyValue(val, &out.Resources.Cores)
		case "order_hidden_deps":
			err = gocty.FromCtyValue(val, &out.OrderHiddenDeps)
		case "extra_args":
			out.ExtraArgs, err = asStringList(val)
		default:
			return fmt.Errorf("unknown setting %q", name)
		}
		if err != nil {
			return fmt.Errorf("setting %q: %w", name, err)
		}
	}

	return nil
}

func asString(val cty.Value, out *string) error {
	if val.Type() != cty.String {
		return fmt.Errorf("expected string, got %s", val.Type().FriendlyName())
	}
	*out = val.AsString()
	return nil
}

func asStringList(val cty.Value) ([]string, error) {
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("expected list of strings, got %s", val.Type().FriendlyName())
	}
	var out []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.Type() != cty.String {
			return nil, fmt.Errorf("expected list of strings, found %s element", elem.Type().FriendlyName())
		}
		out = append(out, elem.AsString())
	}
	return out, nil
}
