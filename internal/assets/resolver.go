package assets

import "errors"

// AssetResolver looks assets up in a custom directory first and falls back
// to the embedded set for anything the directory does not provide.
type AssetResolver struct {
	loaders []AssetLoader // most specific first; embedded is always last
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath means
// embedded assets only; an invalid one is an error.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	var loaders []AssetLoader
	if customBasePath != "" {
		custom, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		loaders = append(loaders, custom)
	}
	return &AssetResolver{loaders: append(loaders, NewEmbeddedLoader())}, nil
}

// LoadStyle returns the first stylesheet called name.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate returns the first page template called name.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

// first tries each loader in turn. Only "not found" moves on; invalid
// names and read failures stop the search.
func (r *AssetResolver) first(load func(AssetLoader) (string, error)) (string, error) {
	var err error
	for _, l := range r.loaders {
		var content string
		content, err = load(l)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrStyleNotFound) && !errors.Is(err, ErrTemplateNotFound) {
			return "", err
		}
	}
	return "", err
}

// HasCustomLoader reports whether a custom directory is consulted.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.loaders) > 1
}

var _ AssetLoader = (*AssetResolver)(nil)
