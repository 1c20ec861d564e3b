// Package dialogs provides application dialogs.
package dialogs

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"glazing-estimator/internal/pricing"
)

// RatesDialog provides a property sheet for editing per-square-foot pricing
// rates.
type RatesDialog struct {
	rates  pricing.Rates
	window fyne.Window

	costEntry       *widget.Entry
	retailLowEntry  *widget.Entry
	retailHighEntry *widget.Entry

	onSave func(pricing.Rates)
}

// NewRatesDialog creates a rates dialog seeded with the current rates.
func NewRatesDialog(rates pricing.Rates, window fyne.Window, onSave func(pricing.Rates)) *RatesDialog {
	return &RatesDialog{
		rates:  rates,
		window: window,
		onSave: onSave,
	}
}

// Show displays the dialog.
func (d *RatesDialog) Show() {
	content := d.createContent()

	dlg := dialog.NewCustomConfirm(
		"Pricing Rates",
		"Save",
		"Cancel",
		content,
		func(save bool) {
			if !save {
				return
			}
			if d.applyChanges() && d.onSave != nil {
				d.onSave(d.rates)
			}
		},
		d.window,
	)
	dlg.Resize(fyne.NewSize(400, 300))
	dlg.Show()
}

func (d *RatesDialog) createContent() fyne.CanvasObject {
	d.costEntry = widget.NewEntry()
	d.costEntry.SetText(fmt.Sprintf("%.2f", d.rates.CostPerSqFt))

	d.retailLowEntry = widget.NewEntry()
	d.retailLowEntry.SetText(fmt.Sprintf("%.2f", d.rates.RetailLowPerSqFt))

	d.retailHighEntry = widget.NewEntry()
	d.retailHighEntry.SetText(fmt.Sprintf("%.2f", d.rates.RetailHighPerSqFt))

	form := widget.NewForm(
		widget.NewFormItem("Cost ($/sq ft)", d.costEntry),
		widget.NewFormItem("Retail low ($/sq ft)", d.retailLowEntry),
		widget.NewFormItem("Retail high ($/sq ft)", d.retailHighEntry),
	)

	return container.NewVBox(
		widget.NewCard("Per Square Foot Rates", "", form),
	)
}

// applyChanges parses the entries back into the rates. Entries that fail to
// parse, or a range where high is below low, leave the rates untouched.
func (d *RatesDialog) applyChanges() bool {
	cost, err := strconv.ParseFloat(d.costEntry.Text, 64)
	if err != nil || cost < 0 {
		return false
	}
	low, err := strconv.ParseFloat(d.retailLowEntry.Text, 64)
	if err != nil || low < 0 {
		return false
	}
	high, err := strconv.ParseFloat(d.retailHighEntry.Text, 64)
	if err != nil || high < low {
		return false
	}

	d.rates.CostPerSqFt = cost
	d.rates.RetailLowPerSqFt = low
	d.rates.RetailHighPerSqFt = high
	return true
}
