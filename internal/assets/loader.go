package assets

// Names of the assets a site uses when none is configured.
const (
	DefaultTemplateName = "default"
	DefaultStyleName    = "default"
)

// AssetLoader loads site assets by bare name, without extension.
// A missing asset is ErrStyleNotFound or ErrTemplateNotFound; a malformed
// name is ErrInvalidAssetName.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}
