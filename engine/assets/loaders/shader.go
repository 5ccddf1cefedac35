package loaders

import (
	"os"

	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

type ShaderSourceLoader struct{}

func (sl *ShaderSourceLoader) Load(path string, assetType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		core.LogError("failed to read shader source '%s': %v", path, err)
		return nil, err
	}
	return &metadata.Resource{
		Name:     "shader",
		FullPath: path,
		DataSize: uint64(len(data)),
		Data: &metadata.ShaderSourceResourceData{
			Source: string(data),
		},
	}, nil
}

func (sl *ShaderSourceLoader) Unload(*metadata.Resource) error {
	return nil
}
