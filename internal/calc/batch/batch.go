package batch

import (
	"fmt"

	flatslab "github.com/peerapatpinyo-lgtm/flatslab-sub000/internal/calc/flatslab"
)

type PanelBatchInput struct {
	Items []flatslab.Input `json:"items"`
}

type PanelBatchResult struct {
	Results []flatslab.Report `json:"results"`
	AllSafe bool              `json:"all_safe"`
}

// CalculatePanels runs the design check over every panel in the list.
// Each run is independent; the first invalid panel aborts the batch.
func CalculatePanels(in PanelBatchInput) (PanelBatchResult, error) {
	if len(in.Items) == 0 {
		return PanelBatchResult{}, fmt.Errorf("no items")
	}
	out := PanelBatchResult{Results: make([]flatslab.Report, 0, len(in.Items)), AllSafe: true}
	for i, item := range in.Items {
		res, err := flatslab.Calculate(item)
		if err != nil {
			return PanelBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.AllSafe = out.AllSafe && res.Safe
		out.Results = append(out.Results, res)
	}
	return out, nil
}
