package assets

// AssetResolver searches a user assets directory before the embedded assets.
// Only a missing asset falls through; invalid names and read errors are
// returned as is.
type AssetResolver struct {
	layers []AssetLoader // searched in order, embedded last
}

// NewAssetResolver creates an AssetResolver. An empty dir means embedded
// assets only. Returns ErrInvalidBasePath if dir is set but unusable.
func NewAssetResolver(dir string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if dir != "" {
		custom, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		r.layers = append(r.layers, custom)
	}
	r.layers = append(r.layers, NewEmbeddedLoader())
	return r, nil
}

// LoadStyle returns the first stylesheet called name.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate returns the first page template called name.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

func (r *AssetResolver) first(load func(AssetLoader) (string, error)) (string, error) {
	var err error
	for _, layer := range r.layers {
		var content string
		content, err = load(layer)
		if err == nil {
			return content, nil
		}
		if !isNotFound(err) {
			return "", err
		}
	}
	return "", err
}

// HasCustomLoader reports whether a user assets directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.layers) > 1
}

var _ AssetLoader = (*AssetResolver)(nil)
