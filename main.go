// Package main provides the entry point for the Glazing Estimator application.
package main

import (
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"glazing-estimator/internal/app"
	"glazing-estimator/internal/measure"
	"glazing-estimator/internal/photo"
	"glazing-estimator/internal/pricing"
	"glazing-estimator/internal/version"
	"glazing-estimator/ui/mainwindow"
	"glazing-estimator/ui/prefs"
)

const appTitle = "Glazing Estimator"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID("io.glazing.estimator")
	fyneApp.Settings().SetTheme(&app.EstimatorTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()
	applyPrefs(appState, appPrefs)

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// A photo path on the command line opens it immediately.
	if len(os.Args) > 1 {
		path := os.Args[1]
		p, err := photo.Load(path)
		if err != nil {
			log.Printf("Failed to load photo %s: %v", path, err)
		} else {
			appState.SetPhoto(p)
		}
	}

	win.ShowAndRun()
}

// applyPrefs restores the persisted calibration and pricing selections.
func applyPrefs(state *app.State, p *prefs.Prefs) {
	if name := p.String(prefs.KeyPreset); name != "" {
		if _, ok := measure.GetPreset(name); ok {
			state.SelectPreset(name)
		}
	}
	if p.Bool(prefs.KeyUseCustom, false) {
		if inches := p.Float(prefs.KeyCustomInches, 0); inches > 0 {
			state.SetCustomInches(inches)
		}
	}
	if name := p.String(prefs.KeyPolicy); name != "" {
		policy := pricing.PolicyByName(name)
		if rates, ok := policy.(pricing.Rates); ok {
			rates.CostPerSqFt = p.Float(prefs.KeyCostRate, rates.CostPerSqFt)
			rates.RetailLowPerSqFt = p.Float(prefs.KeyRetailLowRate, rates.RetailLowPerSqFt)
			rates.RetailHighPerSqFt = p.Float(prefs.KeyRetailHiRate, rates.RetailHighPerSqFt)
			policy = rates
		}
		state.SetPolicy(policy)
	}
}
