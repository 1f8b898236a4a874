package dispatch

import (
	"context"
	"sort"

	"github.com/wovenflow/runtime/internal/schema"
)

// MergeExecutor executes merge nodes. The core rule: if the gathered input
// is a sequence, return its one-level flattening, otherwise return it
// unchanged. When the node's input is specifically a fan-in result (the
// Runner gathered it from more than one upstream edge) the node's merge
// strategy picks how to reduce that mapping to a single value first; a
// single upstream's output that happens to be an ordinary map is left
// alone and falls through to the sequence check below unchanged.
type MergeExecutor struct{}

func (e *MergeExecutor) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	data, err := schema.AsMergeData(node.Data)
	if err != nil {
		return nil, err
	}

	if fanIn, ok := input.(schema.FanInInput); ok {
		input = reduceMapByStrategy(fanIn, data.Strategy)
	}

	seq, ok := input.([]interface{})
	if !ok {
		return input, nil
	}

	flattened := make([]interface{}, 0, len(seq))
	for _, item := range seq {
		if sub, ok := item.([]interface{}); ok {
			flattened = append(flattened, sub...)
		} else {
			flattened = append(flattened, item)
		}
	}
	return flattened, nil
}

// reduceMapByStrategy reduces a fan-in mapping (upstream label -> output) to
// a single value per the node's configured merge strategy.
func reduceMapByStrategy(obj schema.FanInInput, strategy schema.MergeStrategy) interface{} {
	switch strategy {
	case schema.MergeStrategyObject:
		return obj
	case schema.MergeStrategyFirst, schema.MergeStrategyLast, schema.MergeStrategyList:
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		values := make([]interface{}, 0, len(obj))
		for _, k := range keys {
			values = append(values, obj[k])
		}
		switch strategy {
		case schema.MergeStrategyFirst:
			if len(values) == 0 {
				return nil
			}
			return values[0]
		case schema.MergeStrategyLast:
			if len(values) == 0 {
				return nil
			}
			return values[len(values)-1]
		default:
			return values
		}
	default:
		return obj
	}
}

func (e *MergeExecutor) NodeType() schema.NodeType { return schema.NodeTypeMerge }

func (e *MergeExecutor) Validate(node schema.Node) error {
	_, err := schema.AsMergeData(node.Data)
	return err
}
