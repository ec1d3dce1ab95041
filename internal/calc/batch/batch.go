package batch

import (
	"fmt"

	"Potable/internal/calc/sizing"
)

type SizingBatchInput struct {
	Items []sizing.Input `json:"items"`
}

type SizingBatchResult struct {
	Results    []*sizing.Result `json:"results"`
	Incomplete int              `json:"incomplete"`
}

// Size sizes every item. Items with incomplete data keep their position as a
// nil result.
func Size(in SizingBatchInput) (SizingBatchResult, error) {
	if len(in.Items) == 0 {
		return SizingBatchResult{}, fmt.Errorf("no items")
	}
	out := SizingBatchResult{Results: make([]*sizing.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, _ := sizing.Calculate(item)
		if res == nil {
			out.Incomplete++
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
