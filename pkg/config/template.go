package config

// Template returns a commented default configuration file, written by
// `xmlnav init`.
func Template() []byte {
	return []byte(`# xmlnav configuration.
# Search order: ./.xmlnav.yaml, then $XDG_CONFIG_HOME/xmlnav/config.yaml.
# Every setting may also be overridden with an XMLNAV_* environment
# variable (e.g. XMLNAV_COLOR=never).

# Colorize output: auto, always or never.
color: auto

# Input poll timeout in milliseconds. The screen is redrawn at least
# this often even when no key is pressed.
poll_interval_ms: 200

# PageUp/PageDown stride used before the terminal height is known.
page_size: 10

# Maximum width of the attribute preview beside each entry. 0 disables
# previews.
preview_width: 40

# Show the key help footer on startup.
show_help: true
`)
}
