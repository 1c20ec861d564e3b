// Package panels provides the side panel with calibration, window list, and
// quote tabs.
package panels

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"glazing-estimator/internal/annotate"
	"glazing-estimator/internal/app"
	"glazing-estimator/internal/measure"
	"glazing-estimator/internal/pricing"
)

// SidePanel hosts the three workflow tabs: Calibrate, Windows, and Quote.
type SidePanel struct {
	widget.BaseWidget

	state  *app.State
	window fyne.Window

	tabs *container.AppTabs

	// Calibrate tab
	presetSelect *widget.Select
	customEntry  *widget.Entry
	kindRadio    *widget.RadioGroup
	ppiLabel     *widget.Label

	// Windows tab
	windowList *widget.List
	statsLabel *widget.Label
	windows    []annotate.Rectangle

	// Quote tab
	areaLabel       *widget.Label
	retailLabel     *widget.Label
	commissionLabel *widget.Label
	policySelect    *widget.Select
	copyButton      *widget.Button
}

// NewSidePanel creates the side panel bound to the application state.
func NewSidePanel(state *app.State, window fyne.Window) *SidePanel {
	sp := &SidePanel{state: state, window: window}
	sp.ExtendBaseWidget(sp)

	sp.tabs = container.NewAppTabs(
		container.NewTabItem("Calibrate", sp.buildCalibrateTab()),
		container.NewTabItem("Windows", sp.buildWindowsTab()),
		container.NewTabItem("Quote", sp.buildQuoteTab()),
	)

	state.On(app.EventAnnotationsChanged, func(interface{}) { sp.refresh() })
	state.On(app.EventCalibrationChanged, func(interface{}) { sp.refresh() })
	state.On(app.EventPolicyChanged, func(interface{}) { sp.refresh() })
	state.On(app.EventPhotoLoaded, func(interface{}) { sp.refresh() })

	sp.refresh()
	return sp
}

func (sp *SidePanel) buildCalibrateTab() fyne.CanvasObject {
	sp.presetSelect = widget.NewSelect(measure.ListPresets(), func(name string) {
		sp.state.SelectPreset(name)
	})
	if names := measure.ListPresets(); len(names) > 0 {
		sp.presetSelect.SetSelectedIndex(0)
	}

	sp.customEntry = widget.NewEntry()
	sp.customEntry.SetPlaceHolder("Height in inches")
	sp.customEntry.OnSubmitted = func(text string) {
		inches, err := strconv.ParseFloat(text, 64)
		if err != nil {
			sp.customEntry.SetText("")
			return
		}
		sp.state.SetCustomInches(inches)
	}

	sp.kindRadio = widget.NewRadioGroup(
		[]string{annotate.KindCalibration.String(), annotate.KindMeasurement.String()},
		func(selected string) {
			kind := annotate.KindMeasurement
			if selected == annotate.KindCalibration.String() {
				kind = annotate.KindCalibration
			}
			sp.state.Controller().SetKind(kind)
		},
	)
	sp.kindRadio.SetSelected(annotate.KindCalibration.String())

	sp.ppiLabel = widget.NewLabel("Scale: not calibrated")

	return container.NewVBox(
		widget.NewLabel("Drawing mode"),
		sp.kindRadio,
		widget.NewSeparator(),
		widget.NewLabel("Reference object"),
		sp.presetSelect,
		widget.NewLabel("Custom height"),
		sp.customEntry,
		widget.NewSeparator(),
		sp.ppiLabel,
	)
}

func (sp *SidePanel) buildWindowsTab() fyne.CanvasObject {
	sp.windowList = widget.NewList(
		func() int { return len(sp.windows) },
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil, nil,
				widget.NewButton("Remove", nil),
				widget.NewLabel(""))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(sp.windows) {
				return
			}
			rect := sp.windows[id]
			border := obj.(*fyne.Container)
			label := border.Objects[0].(*widget.Label)
			button := border.Objects[1].(*widget.Button)

			text := rect.Label
			if ppi, ok := sp.state.PixelsPerInch(); ok {
				text = fmt.Sprintf("%s: %.2f sq ft", rect.Label, measure.AreaSqFt(rect, ppi))
			}
			label.SetText(text)
			rectID := rect.ID
			button.OnTapped = func() {
				sp.state.RemoveAnnotation(rectID)
			}
		},
	)

	sp.statsLabel = widget.NewLabel("No windows marked")

	return container.NewBorder(nil, sp.statsLabel, nil, nil, sp.windowList)
}

func (sp *SidePanel) buildQuoteTab() fyne.CanvasObject {
	sp.areaLabel = widget.NewLabel("Area: -")
	sp.retailLabel = widget.NewLabel("Retail: -")
	sp.commissionLabel = widget.NewLabel("Commission: -")

	sp.policySelect = widget.NewSelect([]string{"Standard", "Tiered"}, func(name string) {
		sp.state.SetPolicy(pricing.PolicyByName(name))
	})
	sp.policySelect.SetSelected(sp.state.Policy().Name())

	sp.copyButton = widget.NewButton("Copy Summary", func() {
		text, ok := sp.state.SummaryText()
		if !ok {
			return
		}
		sp.window.Clipboard().SetContent(text)
	})
	sp.copyButton.Disable()

	return container.NewVBox(
		sp.areaLabel,
		sp.retailLabel,
		sp.commissionLabel,
		widget.NewSeparator(),
		widget.NewLabel("Pricing policy"),
		sp.policySelect,
		widget.NewSeparator(),
		sp.copyButton,
	)
}

// refresh recomputes every derived label from the current state.
func (sp *SidePanel) refresh() {
	if ppi, ok := sp.state.PixelsPerInch(); ok {
		sp.ppiLabel.SetText(fmt.Sprintf("Scale: %.2f px/in", ppi))
	} else {
		sp.ppiLabel.SetText("Scale: not calibrated")
	}

	sp.windows = sp.state.Annotations().Measurements()
	sp.windowList.Refresh()

	ppi, _ := sp.state.PixelsPerInch()
	if stats, ok := measure.WindowStats(sp.windows, ppi); ok {
		sp.statsLabel.SetText(fmt.Sprintf(
			"%d windows, %.2f sq ft total\nmean %.2f, min %.2f, max %.2f",
			stats.Count, stats.TotalSqFt, stats.MeanSqFt, stats.MinSqFt, stats.MaxSqFt))
	} else if len(sp.windows) > 0 {
		sp.statsLabel.SetText(fmt.Sprintf("%d windows (calibrate for areas)", len(sp.windows)))
	} else {
		sp.statsLabel.SetText("No windows marked")
	}

	if total, ok := sp.state.TotalArea(); ok {
		sp.areaLabel.SetText(fmt.Sprintf("Area: %.2f sq ft", total))
	} else {
		sp.areaLabel.SetText("Area: -")
	}

	if q, ok := sp.state.Quote(); ok {
		sp.retailLabel.SetText(fmt.Sprintf("Retail: $%.2f - $%.2f", q.RetailLow, q.RetailHigh))
		sp.commissionLabel.SetText(fmt.Sprintf("Commission: $%.2f - $%.2f", q.CommissionLow, q.CommissionHigh))
		sp.copyButton.Enable()
	} else {
		sp.retailLabel.SetText("Retail: -")
		sp.commissionLabel.SetText("Commission: -")
		sp.copyButton.Disable()
	}
}

// CreateRenderer implements fyne.Widget.
func (sp *SidePanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sp.tabs)
}
