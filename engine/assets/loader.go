package assets

import "github.com/spaghettifunk/studio3d/engine/renderer/metadata"

type Loader interface {
	// Load returns the decoded asset in Resource.Data; the concrete type
	// depends on the loader.
	Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error)
	Unload(*metadata.Resource) error
}
