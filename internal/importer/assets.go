package importer

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diamondcougar10/Webineer/internal/generator"
	"github.com/diamondcougar10/Webineer/internal/site"
)

// kindByExtension classifies an asset file by extension.
var kindByExtension = map[string]string{
	".png": "images", ".jpg": "images", ".jpeg": "images", ".gif": "images",
	".webp": "images", ".svg": "images", ".ico": "images",
	".woff": "fonts", ".woff2": "fonts", ".ttf": "fonts", ".otf": "fonts",
	".mp4": "media", ".webm": "media", ".mp3": "media",
	".js": "js",
}

func assetKind(ext string) string {
	if kind, ok := kindByExtension[ext]; ok {
		return kind
	}
	return "other"
}

// importAssets reads, classifies, and embeds asset candidates into the
// project. Duplicate content (by SHA-256) reuses the already-imported asset;
// name collisions within a kind get a numeric suffix. Returns a mapping from
// source-relative path to rendered asset path for link rewriting.
func importAssets(project *site.Project, assets []candidate, result *Result) map[string]string {
	mapping := make(map[string]string, len(assets))

	taken := make(map[string]struct{})
	byHash := make(map[string]string) // content hash -> asset name
	for _, existing := range project.Assets {
		taken[existing.Kind+"/"+existing.Name] = struct{}{}
		if data, err := base64.StdEncoding.DecodeString(existing.DataBase64); err == nil {
			sum := sha256.Sum256(data)
			byHash[existing.Kind+":"+hex.EncodeToString(sum[:])] = existing.Name
		}
	}

	for _, c := range assets {
		data, err := os.ReadFile(c.path)
		if err != nil {
			result.errorf("read asset %s: %v", c.relPath, err)
			continue
		}

		kind := assetKind(c.ext)
		sum := sha256.Sum256(data)
		hashKey := kind + ":" + hex.EncodeToString(sum[:])
		if name, seen := byHash[hashKey]; seen {
			mapping[c.relPath] = renderedAssetPath(kind, name)
			continue
		}

		name := uniqueAssetName(filepath.Base(c.relPath), kind, taken)
		project.Assets = append(project.Assets, site.Asset{
			Name:       name,
			DataBase64: base64.StdEncoding.EncodeToString(data),
			Kind:       kind,
		})
		taken[kind+"/"+name] = struct{}{}
		byHash[hashKey] = name
		mapping[c.relPath] = renderedAssetPath(kind, name)
		result.AssetsCopied++
	}
	return mapping
}

// renderedAssetPath is where the generator will emit an asset, relative to
// the output root (the same path pages reference it by).
func renderedAssetPath(kind, name string) string {
	return "assets/" + generator.AssetKindDir(kind) + "/" + name
}

func uniqueAssetName(base, kind string, taken map[string]struct{}) string {
	if _, exists := taken[kind+"/"+base]; !exists {
		return base
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, n, ext)
		if _, exists := taken[kind+"/"+candidate]; !exists {
			return candidate
		}
	}
}
