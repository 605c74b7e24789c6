package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatslab "github.com/peerapatpinyo-lgtm/flatslab-sub000/internal/calc/flatslab"
)

func samplePanel() flatslab.Input {
	choice := flatslab.RebarChoice{BarDiameterMM: 12, SpacingMM: 100}
	return flatslab.Input{
		SpanXM:        5,
		SpanYM:        5,
		ThicknessMM:   200,
		StoreyHeightM: 3,
		ColumnWidthMM: 400,
		ColumnDepthMM: 400,
		CoverMM:       25,
		SDLKgM2:       100,
		LiveKgM2:      250,
		FcKsc:         240,
		FyKsc:         4000,
		Position:      flatslab.PositionInterior,
		Method:        flatslab.MethodDDM,
		Rebar: flatslab.RebarPlan{
			ColumnStripTop:    choice,
			ColumnStripBottom: choice,
			MiddleStripTop:    choice,
			MiddleStripBottom: choice,
		},
	}
}

func TestCalculatePanels(t *testing.T) {
	edge := samplePanel()
	edge.Position = flatslab.PositionEdge
	edge.Method = flatslab.MethodEFM

	res, err := CalculatePanels(PanelBatchInput{Items: []flatslab.Input{samplePanel(), edge}})
	require.NoError(t, err)

	require.Len(t, res.Results, 2)
	assert.Equal(t, flatslab.PositionInterior, res.Results[0].Position)
	assert.Equal(t, flatslab.MethodEFM, res.Results[1].Method)
	assert.NotNil(t, res.Results[1].Stiffness)
}

func TestCalculatePanelsEmpty(t *testing.T) {
	_, err := CalculatePanels(PanelBatchInput{})
	assert.Error(t, err)
}

func TestCalculatePanelsAbortsOnInvalidItem(t *testing.T) {
	bad := samplePanel()
	bad.ThicknessMM = 0

	_, err := CalculatePanels(PanelBatchInput{Items: []flatslab.Input{samplePanel(), bad}})
	require.Error(t, err)
	assert.ErrorIs(t, err, flatslab.ErrInvalidInput)
	assert.Contains(t, err.Error(), "item 1")
}
