// pkg/manifest/constants.go
package manifest

const (
	// VersionPlaceholder is replaced with the resolved release version
	VersionPlaceholder = "VERSION"

	// GUIDPlaceholder is replaced with a sidecar's fixed asset identifier
	GUIDPlaceholder = "GUID"

	// SidecarExt is appended to an asset path to name its metadata file
	SidecarExt = ".meta"
)

// PackageJSON is the Unity package manifest
const PackageJSON = `{
  "name": "com.runevision.layerprocgen",
  "version": "VERSION",
  "displayName": "LayerProcGen",
  "description": "LayerProcGen is a framework that can be used to implement layer-based procedural generation that's infinite, deterministic and contextual.",
  "license": "MPL-2.0",
  "unity": "2019.4",
  "documentationUrl": "https://runevision.github.io/LayerProcGen/",
  "dependencies": {
  },
  "samples": [
    {
      "displayName": "Simple Samples",
      "description": "Contains a few simple sample scenes including scripts.",
      "path": "Samples~/SimpleSamples"
    },
    {
      "displayName": "Terrain Sample",
      "description": "Contains a sample scene, including scripts, for generating a terrain with natural paths.",
      "path": "Samples~/TerrainSample"
    }
  ],
  "keywords": [
    "procedural",
    "generation"
  ],
  "author": {
    "name": "Rune Skovbo Johansen",
    "email": "rune@runevision.com",
    "url": "https://runevision.com"
  }
}
`

// PluginCfg is the Godot addon descriptor
const PluginCfg = `
[plugin]

name="LayerProcGen"
description="LayerProcGen is a framework that can be used to implement layer-based procedural generation that's infinite, deterministic and contextual."
author="Rune Skovbo Johansen - rune@runevision.com"
contributor="Sythelux Rikd - dersyth@gmail.com"
version="VERSION"
script="LayerProcGen.cs"
language="C-sharp"
documentationUrl="https://runevision.github.io/LayerProcGen/"
`

// PackageManifestMeta is the Unity importer stub paired with package.json
const PackageManifestMeta = `fileFormatVersion: 2
guid: GUID
PackageManifestImporter:
  externalObjects: {}
  userData: 
  assetBundleName: 
  assetBundleVariant: 
`
