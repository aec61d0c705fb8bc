// Package theme holds the declarative style configuration of the web client.
package theme

// Keyframe maps a step ("0%", "100%") to CSS properties.
type Keyframe map[string]map[string]string

type Extend struct {
	Colors    map[string]string   `json:"colors"`
	Animation map[string]string   `json:"animation"`
	Keyframes map[string]Keyframe `json:"keyframes"`
}

type Theme struct {
	Extend Extend `json:"extend"`
}

type Config struct {
	Content  []string `json:"content"`
	Theme    Theme    `json:"theme"`
	DarkMode string   `json:"darkMode"`
	Plugins  []string `json:"plugins"`
}

// Default returns a fresh copy of the client style configuration.
func Default() Config {
	return Config{
		Content: []string{
			"./index.html",
			"./src/**/*.{js,jsx}",
		},
		Theme: Theme{
			Extend: Extend{
				Colors: map[string]string{
					"primary":   "#3B82F6",
					"secondary": "#10B981",
					"danger":    "#EF4444",
					"warning":   "#F59E0B",
				},
				Animation: map[string]string{
					"fadeIn":  "fadeIn 0.5s ease-in",
					"slideUp": "slideUp 0.5s ease-out",
				},
				Keyframes: map[string]Keyframe{
					"fadeIn": {
						"0%":   {"opacity": "0"},
						"100%": {"opacity": "1"},
					},
					"slideUp": {
						"0%":   {"transform": "translateY(10px)", "opacity": "0"},
						"100%": {"transform": "translateY(0)", "opacity": "1"},
					},
				},
			},
		},
		DarkMode: "class",
		Plugins:  []string{},
	}
}
