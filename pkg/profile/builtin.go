// pkg/profile/builtin.go
package profile

import (
	"sort"

	"github.com/layerprocgen/relpack/pkg/docs"
	"github.com/layerprocgen/relpack/pkg/manifest"
)

// Built-in target names
const (
	NameUPM          = "upm"
	NameGodotAddon   = "godot-addon"
	NameGodotProject = "godot-project"
)

const (
	sourceDir       = "Src"
	samplesDir      = "Samples"
	changelogFile   = "CHANGELOG.md"
	licenseFile     = "LICENSE.md"
	noticesFile     = "Third Party Notices.md"
	readmeFile      = "README.md"
	packageJSONGUID = "f1654b95596bb49ad94c8ef46ca50459"
)

// UPM is the Unity Package Manager release, checked out to branch "upm".
func UPM() *Profile {
	return &Profile{
		Name:        NameUPM,
		Description: "Unity package (package.json, .meta sidecars, Samples~)",
		OutputRoot:  "../upm",
		Branch:      "upm",
		Sources: []Mapping{
			{From: sourceDir, To: ""},
			{From: samplesDir, To: "Samples~"},
		},
		Readmes: repoAndTargetReadmes(),
		AuxFiles: []AuxFile{
			{Path: changelogFile, Sidecar: true},
			{Path: licenseFile, Sidecar: true},
			{Path: readmeFile + manifest.SidecarExt},
			{Path: noticesFile, Sidecar: true},
		},
		Manifests: []Manifest{{
			Path:        "package.json",
			Format:      manifest.FormatJSON,
			Template:    manifest.PackageJSON,
			SidecarGUID: packageJSONGUID,
		}},
	}
}

// GodotAddon is the bare addon folder, checked out to branch "godot_addon".
func GodotAddon() *Profile {
	return &Profile{
		Name:        NameGodotAddon,
		Description: "Godot addon folder (plugin.cfg, no Unity files)",
		OutputRoot:  "../addon",
		Branch:      "godot_addon",
		Ignore:      []string{"*.meta", "Unity*", "*.asmdef"},
		Sources:     []Mapping{{From: sourceDir, To: ""}},
		Readmes:     repoAndTargetReadmes(),
		AuxFiles:    godotAuxFiles(),
		Manifests:   []Manifest{godotPlugin()},
	}
}

// GodotProject is a Godot project with the addon under addons/, checked out
// to branch "godot_project".
func GodotProject() *Profile {
	return &Profile{
		Name:        NameGodotProject,
		Description: "Godot project with the addon under addons/LayerProcGen",
		OutputRoot:  "../godot_project",
		AssetRoot:   "addons/LayerProcGen",
		Branch:      "godot_project",
		Ignore:      []string{"*.meta", "*.asmdef"},
		Sources:     []Mapping{{From: sourceDir, To: "addons/LayerProcGen"}},
		Readmes:     repoAndTargetReadmes(),
		AuxFiles:    godotAuxFiles(),
		Manifests:   []Manifest{godotPlugin()},
	}
}

// Builtins returns fresh copies of every built-in profile keyed by name.
func Builtins() map[string]*Profile {
	return map[string]*Profile{
		NameUPM:          UPM(),
		NameGodotAddon:   GodotAddon(),
		NameGodotProject: GodotProject(),
	}
}

// BuiltinNames returns the built-in profile names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, 3)
	for name := range Builtins() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func repoAndTargetReadmes() []Readme {
	return []Readme{
		{Variant: docs.VariantLocalImages, Root: RootRepo, Dest: readmeFile},
		{Variant: docs.VariantOnlineImages, Root: RootTarget, Dest: readmeFile},
	}
}

func godotAuxFiles() []AuxFile {
	return []AuxFile{
		{Path: changelogFile},
		{Path: licenseFile},
		{Path: noticesFile},
	}
}

func godotPlugin() Manifest {
	return Manifest{
		Path:     "plugin.cfg",
		Format:   manifest.FormatTOML,
		Template: manifest.PluginCfg,
	}
}
