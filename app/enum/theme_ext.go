package enum

// Toggle returns the opposite theme (dark↔light). Unset defaults to dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether the theme is dark.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}
