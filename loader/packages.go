/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package loader

import (
	"cmp"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"golang.org/x/tools/go/packages"

	"dirpx.dev/capx/apis"
	"dirpx.dev/capx/capability"
	"dirpx.dev/capx/config"
)

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedSyntax |
	packages.NeedModule

// Packages loads modules as Go packages through the go command and describes
// every type they declare from type-checker output. Nothing is executed or
// instantiated.
type Packages struct {
	cfg  apis.Config
	load func(cfg *packages.Config, patterns ...string) ([]*packages.Package, error)
}

var _ apis.ModuleLoader = (*Packages)(nil)

// NewPackages returns a loader querying the build system as configured by cfg.
func NewPackages(cfg apis.Config) *Packages {
	return &Packages{cfg: config.Clone(cfg), load: packages.Load}
}

// GetExportedTypes implements apis.ModuleLoader.
//
// Types are returned in source order, file by file as the package lists its
// files: package-level declarations and types
// declared in function bodies alike, the latter flagged as Nested.
// Aliases are not distinct types and are skipped.
func (p *Packages) GetExportedTypes(ref apis.ModuleReference) ([]apis.TypeDescriptor, error) {
	if err := module.CheckImportPath(ref.Path); err != nil {
		return nil, loadError(ref, errors.Wrap(err, "invalid import path"))
	}
	if ref.Version != "" && !semver.IsValid(ref.Version) {
		return nil, loadError(ref, errors.Wrapf(ErrInvalidVersion, "%q", ref.Version))
	}

	pkgs, err := p.load(&packages.Config{
		Mode:       loadMode,
		Dir:        p.cfg.Dir,
		Env:        p.cfg.Env,
		BuildFlags: p.cfg.BuildFlags,
		Tests:      p.cfg.Tests,
	}, ref.Path)
	if err != nil {
		return nil, loadError(ref, errors.Wrap(err, "go/packages"))
	}

	pkg := p.pick(pkgs, ref.Path)
	if pkg == nil {
		return nil, loadError(ref, ErrModuleNotFound)
	}
	if err := packageError(pkg); err != nil {
		return nil, loadError(ref, err)
	}
	if err := checkVersion(pkg, ref.Version); err != nil {
		return nil, loadError(ref, err)
	}

	ifaces := p.capabilities(pkg)
	return describePackage(pkg, ifaces), nil
}

// pick selects the package for path, preferring the test variant when tests are enabled.
func (p *Packages) pick(pkgs []*packages.Package, path string) *packages.Package {
	var found *packages.Package
	for _, pkg := range pkgs {
		if pkg.PkgPath != path {
			continue
		}
		if !p.cfg.Tests {
			return pkg
		}
		// Test variants carry an ID such as "path [path.test]".
		if pkg.ID != pkg.PkgPath {
			return pkg
		}
		if found == nil {
			found = pkg
		}
	}
	return found
}

func packageError(pkg *packages.Package) error {
	if len(pkg.Errors) == 0 {
		if pkg.Types == nil || pkg.TypesInfo == nil {
			return errors.New("no type information")
		}
		return nil
	}
	msgs := make([]string, 0, len(pkg.Errors))
	for _, e := range pkg.Errors {
		msgs = append(msgs, e.Msg)
	}
	return errors.New(strings.Join(msgs, "; "))
}

func checkVersion(pkg *packages.Package, want string) error {
	if want == "" {
		return nil
	}
	have := ""
	if pkg.Module != nil {
		have = pkg.Module.Version
		if pkg.Module.Replace != nil && pkg.Module.Replace.Version != "" {
			have = pkg.Module.Replace.Version
		}
	}
	if have == "" || semver.Compare(have, want) != 0 {
		return errors.Wrapf(ErrVersionMismatch, "want %s, have %q", want, have)
	}
	return nil
}

// capabilities collects the candidate interfaces: the marker, interfaces
// declared by pkg itself and interfaces of imported packages in scope.
func (p *Packages) capabilities(pkg *packages.Package) []*types.Named {
	var out []*types.Named
	seen := map[*types.Package]bool{}
	add := func(tp *types.Package, markerOnly bool) {
		if tp == nil || seen[tp] {
			return
		}
		seen[tp] = true
		scope := tp.Scope()
		for _, name := range scope.Names() {
			if markerOnly && name != capability.MarkerName {
				continue
			}
			if iface := candidate(scope.Lookup(name)); iface != nil {
				out = append(out, iface)
			}
		}
	}

	add(pkg.Types, false)
	packages.Visit([]*packages.Package{pkg}, func(dep *packages.Package) bool {
		switch {
		case dep == pkg:
		case p.inScope(dep.PkgPath):
			add(dep.Types, false)
		case dep.PkgPath == capability.PkgPath:
			add(dep.Types, true)
		}
		return true
	}, nil)
	return out
}

func (p *Packages) inScope(path string) bool {
	return slices.ContainsFunc(p.cfg.CapabilityScope, func(prefix string) bool {
		prefix = strings.TrimSuffix(prefix, "/")
		return prefix != "" && (path == prefix || strings.HasPrefix(path, prefix+"/"))
	})
}

// candidate returns obj as a usable capability interface: exported, named,
// non-generic, with at least one method.
func candidate(obj types.Object) *types.Named {
	tn, ok := obj.(*types.TypeName)
	if !ok || tn.IsAlias() || !tn.Exported() {
		return nil
	}
	named, ok := tn.Type().(*types.Named)
	if !ok || named.TypeParams().Len() > 0 {
		return nil
	}
	iface, ok := named.Underlying().(*types.Interface)
	if !ok || iface.NumMethods() == 0 {
		return nil
	}
	return named
}

func describePackage(pkg *packages.Package, ifaces []*types.Named) []apis.TypeDescriptor {
	var names []*types.TypeName
	for _, obj := range pkg.TypesInfo.Defs {
		tn, ok := obj.(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		if _, isParam := tn.Type().(*types.TypeParam); isParam {
			continue
		}
		names = append(names, tn)
	}
	slices.SortFunc(names, sourceOrder(pkg.Syntax))

	out := make([]apis.TypeDescriptor, 0, len(names))
	for _, tn := range names {
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		generic := named.TypeParams().Len() > 0
		caps := make([]string, 0, len(ifaces))
		for _, iface := range ifaces {
			if iface != named && satisfies(named, iface.Underlying().(*types.Interface), generic) {
				caps = append(caps, apis.Qualify(iface.Obj().Pkg().Path(), iface.Obj().Name()))
			}
		}
		out = append(out, apis.TypeDescriptor{
			Name:         tn.Name(),
			PkgPath:      pkg.PkgPath,
			Exported:     tn.Exported(),
			Abstract:     types.IsInterface(named),
			Generic:      generic,
			Nested:       tn.Parent() != pkg.Types.Scope(),
			Capabilities: apis.NewCapabilitySet(caps...),
		})
	}
	return out
}

// sourceOrder orders objects by file, in the order the package lists its
// files, then by offset within the file. Raw token.Pos values follow the
// order in which files were added to the FileSet, which go/packages does
// concurrently.
func sourceOrder(files []*ast.File) func(a, b *types.TypeName) int {
	locate := func(pos token.Pos) (int, token.Pos) {
		for i, f := range files {
			if f.FileStart <= pos && pos <= f.FileEnd {
				return i, pos - f.FileStart
			}
		}
		return len(files), pos
	}
	return func(a, b *types.TypeName) int {
		fa, oa := locate(a.Pos())
		fb, ob := locate(b.Pos())
		if c := cmp.Compare(fa, fb); c != 0 {
			return c
		}
		return cmp.Compare(oa, ob)
	}
}

// satisfies reports whether t or *t implements iface. types.Implements is
// unspecified for uninstantiated generic types, so those are checked by
// method lookup alone.
func satisfies(t *types.Named, iface *types.Interface, generic bool) bool {
	if !generic {
		if types.Implements(t, iface) {
			return true
		}
		return !types.IsInterface(t) && types.Implements(types.NewPointer(t), iface)
	}
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		obj, _, _ := types.LookupFieldOrMethod(t, true, m.Pkg(), m.Name())
		if _, ok := obj.(*types.Func); !ok {
			return false
		}
	}
	return true
}
