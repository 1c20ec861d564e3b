package measure

// Preset is a reference object of known real-world height used to calibrate
// pixel scale.
type Preset struct {
	Name   string  `json:"name"`
	Inches float64 `json:"inches"`
}

// Registry of known calibration presets, keyed by name.
var registry = make(map[string]Preset)
var order []string

// RegisterPreset adds a preset to the registry.
func RegisterPreset(p Preset) {
	if _, exists := registry[p.Name]; !exists {
		order = append(order, p.Name)
	}
	registry[p.Name] = p
}

// GetPreset returns a preset by name.
func GetPreset(name string) (Preset, bool) {
	p, ok := registry[name]
	return p, ok
}

// ListPresets returns all registered preset names in registration order.
func ListPresets() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

func init() {
	// Built-in reference objects.
	RegisterPreset(Preset{Name: "Letter Paper (11 in)", Inches: 11})
	RegisterPreset(Preset{Name: "Entry Door (80 in)", Inches: 80})
}
