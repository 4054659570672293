package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thMonoTheme(),
		thGruvboxTheme(),
		thNordTheme(),
		thCatppuccinTheme(),
		thDraculaTheme(),
		thTokyoNightTheme(),
	} {
		registry[t.Name] = t
	}
}

// thDefaultTheme uses the terminal's own palette with yellow highlights.
func thDefaultTheme() Theme {
	return Theme{
		Name:   DefaultName,
		Dim:    "gray",
		Accent: "yellow",

		Proficient: "yellow",
		Good:       "green",
		Warn:       "yellow",
		Bad:        "red",
	}
}

// thMonoTheme draws without any color.
func thMonoTheme() Theme {
	return Theme{Name: "mono"}
}

func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		Border: "#504945",
		Title:  "#ebdbb2",

		Proficient: "#fabd2f",
		Good:       "#b8bb26",
		Warn:       "#fabd2f",
		Bad:        "#fb4934",
	}
}

func thNordTheme() Theme {
	return Theme{
		Name:       "nord",
		Foreground: "#eceff4",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		Border: "#3b4252",
		Title:  "#eceff4",

		Proficient: "#ebcb8b",
		Good:       "#a3be8c",
		Warn:       "#ebcb8b",
		Bad:        "#bf616a",
	}
}

func thCatppuccinTheme() Theme {
	return Theme{
		Name:       "catppuccin",
		Foreground: "#cdd6f4",
		Dim:        "#6c7086",
		Accent:     "#cba6f7",

		Border: "#313244",
		Title:  "#cdd6f4",

		Proficient: "#f9e2af",
		Good:       "#a6e3a1",
		Warn:       "#f9e2af",
		Bad:        "#f38ba8",
	}
}

func thDraculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Foreground: "#f8f8f2",
		Dim:        "#6272a4",
		Accent:     "#bd93f9",

		Border: "#44475a",
		Title:  "#f8f8f2",

		Proficient: "#f1fa8c",
		Good:       "#50fa7b",
		Warn:       "#f1fa8c",
		Bad:        "#ff5555",
	}
}

func thTokyoNightTheme() Theme {
	return Theme{
		Name:       "tokyo-night",
		Foreground: "#c0caf5",
		Dim:        "#565f89",
		Accent:     "#7aa2f7",

		Border: "#292e42",
		Title:  "#c0caf5",

		Proficient: "#e0af68",
		Good:       "#9ece6a",
		Warn:       "#e0af68",
		Bad:        "#f7768e",
	}
}
