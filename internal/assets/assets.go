package assets

var defaultLoader = NewEmbeddedLoader()

// StyleNames lists the built-in styles, sorted.
func StyleNames() []string {
	return defaultLoader.StyleNames()
}
