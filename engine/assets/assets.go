package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/atelier/engine/assets/loaders"
	"github.com/spaghettifunk/atelier/engine/config"
	"github.com/spaghettifunk/atelier/engine/core"
	"github.com/spaghettifunk/atelier/engine/renderer/metadata"
)

type AssetInfo struct {
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
}

// AssetManager resolves asset names to paths under the configured asset
// root and dispatches loading to the registered per-type loaders. It also
// watches the asset tree so on-disk changes show up in the logs while a
// scene is being authored.
type AssetManager struct {
	cfg     config.AssetsConfig
	assets  map[string]AssetInfo
	loaders map[metadata.ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
}

func NewAssetManager(cfg config.AssetsConfig) (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		cfg:      cfg,
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[metadata.ResourceType]Loader),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

func (am *AssetManager) Initialize() error {
	go am.start()

	if err := am.watchRecursive(am.cfg.RootDir); err != nil {
		// a missing asset tree only costs the change notifications
		core.LogWarn("asset watcher could not index '%s': %v", am.cfg.RootDir, err)
	}

	am.registerLoader(metadata.ResourceTypeImage, &loaders.ImageLoader{})
	am.registerLoader(metadata.ResourceTypeShaderSource, &loaders.ShaderSourceLoader{})

	return nil
}

func (am *AssetManager) Shutdown() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	return nil
}

func (am *AssetManager) registerLoader(assetType metadata.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// ResolvePath returns the on-disk location for a named asset of the
// given type.
func (am *AssetManager) ResolvePath(name string, resourceType metadata.ResourceType) (string, error) {
	switch resourceType {
	case metadata.ResourceTypeImage:
		return filepath.Join(am.cfg.RootDir, am.cfg.TextureDir, name), nil
	case metadata.ResourceTypeShaderSource:
		return filepath.Join(am.cfg.RootDir, am.cfg.ShaderDir, name), nil
	default:
		return "", fmt.Errorf("unknown resource type %d", resourceType)
	}
}

// LoadAsset loads a named asset using the loader registered for its type.
func (am *AssetManager) LoadAsset(name string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	path, err := am.ResolvePath(name, resourceType)
	if err != nil {
		return nil, err
	}

	loader, exists := am.loaders[resourceType]
	if !exists {
		return nil, fmt.Errorf("no loader registered for asset type %d", resourceType)
	}

	resource, err := loader.Load(path, resourceType, params)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	am.assets[path] = AssetInfo{
		Path:       path,
		Type:       resourceType,
		LastLoaded: time.Now(),
	}
	am.mutex.Unlock()

	return resource, nil
}

func (am *AssetManager) UnloadAsset(resource *metadata.Resource) error {
	if resource == nil {
		return nil
	}
	loader, exists := am.loaders[resourceTypeOf(resource.FullPath)]
	if !exists {
		return nil
	}
	return loader.Unload(resource)
}

func (am *AssetManager) start() {
	for {
		select {
		case e := <-am.fsnotify.Events:
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					am.watchRecursive(e.Name)
				}
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if resourceTypeOf(e.Name) != metadata.ResourceTypeNone {
					core.LogInfo("asset changed on disk: %s (reload the scene to pick it up)", e.Name)
				}
			}
			if e.Op&fsnotify.Remove != 0 {
				am.removeAsset(e.Name)
				am.fsnotify.Remove(e.Name)
			}

		case e := <-am.fsnotify.Errors:
			core.LogError(e.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// watchRecursive adds the given directory and everything below it to the
// watch list.
func (am *AssetManager) watchRecursive(path string) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return am.fsnotify.Add(walkPath)
		}
		return nil
	})
}

func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	delete(am.assets, path)
}

func resourceTypeOf(path string) metadata.ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
		return metadata.ResourceTypeImage
	case ".vert", ".frag", ".glsl":
		return metadata.ResourceTypeShaderSource
	default:
		return metadata.ResourceTypeNone
	}
}
