// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simpresent

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/present"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Profile describes a simulated device and surface pair.
type Profile struct {

	// Name is a short name for the profile.
	Name string `toml:"name" yaml:"name"`

	// QueueFamilies are the queue families of the device.
	QueueFamilies []present.QueueFamily `toml:"queue_families" yaml:"queue_families"`

	// Formats are the surface formats, in the order reported.
	Formats []present.SurfaceFormat `toml:"formats" yaml:"formats"`

	PresentModes []present.PresentModes `toml:"present_modes" yaml:"present_modes"`

	MinImageCount int `toml:"min_image_count" yaml:"min_image_count"`

	// MaxImageCount of 0 means no limit.
	MaxImageCount int `toml:"max_image_count" yaml:"max_image_count"`

	// UndefinedExtent makes the surface report [present.UndefinedExtent],
	// leaving the size to the application.
	UndefinedExtent bool `toml:"undefined_extent" yaml:"undefined_extent"`

	// CurrentExtent is the size of the window.
	CurrentExtent present.Extent `toml:"current_extent" yaml:"current_extent"`

	MinExtent present.Extent `toml:"min_extent" yaml:"min_extent"`
	MaxExtent present.Extent `toml:"max_extent" yaml:"max_extent"`

	SupportedTransforms []present.Transforms `toml:"supported_transforms" yaml:"supported_transforms"`
	CurrentTransform    present.Transforms   `toml:"current_transform" yaml:"current_transform"`

	CompositeAlphas []present.CompositeAlphas `toml:"composite_alphas" yaml:"composite_alphas"`

	TransferDst bool `toml:"transfer_dst" yaml:"transfer_dst"`

	// ClampImageCount, if positive, is the number of images every
	// chain actually gets, regardless of the requested count.
	ClampImageCount int `toml:"clamp_image_count" yaml:"clamp_image_count"`

	// Events are scripted changes applied as frames are acquired.
	Events []Event `toml:"events" yaml:"events"`
}

// Event is a scripted change, applied on the given acquire call.
type Event struct {

	// Frame is the 1-based count of acquire calls the event applies on.
	Frame int `toml:"frame" yaml:"frame"`

	// Resize changes the window size and makes the chain out of date.
	Resize *present.Extent `toml:"resize,omitempty" yaml:"resize,omitempty"`

	// Acquire is the status returned by the acquire call.
	Acquire present.Statuses `toml:"acquire,omitempty" yaml:"acquire,omitempty"`

	// Present is the status returned by the next present call.
	Present present.Statuses `toml:"present,omitempty" yaml:"present,omitempty"`

	// DeviceLost makes the device unusable.
	DeviceLost bool `toml:"device_lost,omitempty" yaml:"device_lost,omitempty"`
}

// Clone returns a deep copy of the profile.
func (pr *Profile) Clone() *Profile {
	cp := &Profile{}
	errors.Log(copier.CopyWithOption(cp, pr, copier.Option{CaseSensitive: true, DeepCopy: true}))
	return cp
}

// Encodings are the file encodings a profile can be stored in.
type Encodings int

const (
	TOML Encodings = iota
	YAML
)

// EncodingFor returns the encoding for the given file name, based on
// its extension.
func EncodingFor(filename string) (Encodings, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("simpresent: unknown profile extension %q", filepath.Ext(filename))
}

// Read reads a profile in the given encoding.
func Read(r io.Reader, enc Encodings) (*Profile, error) {
	pr := &Profile{}
	var err error
	switch enc {
	case YAML:
		err = yaml.NewDecoder(r).Decode(pr)
	default:
		err = toml.NewDecoder(r).Decode(pr)
	}
	if err != nil {
		return nil, err
	}
	return pr, nil
}

// Write writes the profile in the given encoding.
func (pr *Profile) Write(w io.Writer, enc Encodings) error {
	switch enc {
	case YAML:
		ye := yaml.NewEncoder(w)
		ye.SetIndent(2)
		if err := ye.Encode(pr); err != nil {
			return err
		}
		return ye.Close()
	default:
		return toml.NewEncoder(w).Encode(pr)
	}
}

// Open reads a profile from the given file, with the encoding given
// by its extension.
func Open(filename string) (*Profile, error) {
	enc, err := EncodingFor(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	pr, err := Read(bytes.NewReader(b), enc)
	if err != nil {
		return nil, fmt.Errorf("simpresent: %s: %w", filename, err)
	}
	if pr.Name == "" {
		pr.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return pr, nil
}

// Save writes the profile to the given file, with the encoding given
// by its extension.
func (pr *Profile) Save(filename string) error {
	enc, err := EncodingFor(filename)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err := pr.Write(&b, enc); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0666)
}

//go:embed profiles
var builtins embed.FS

// Builtin returns the builtin profile with the given name.
func Builtin(name string) (*Profile, error) {
	ents, err := builtins.ReadDir("profiles")
	if err != nil {
		return nil, err
	}
	for _, ent := range ents {
		fn := ent.Name()
		if strings.TrimSuffix(fn, filepath.Ext(fn)) != name {
			continue
		}
		enc, err := EncodingFor(fn)
		if err != nil {
			return nil, err
		}
		f, err := builtins.Open("profiles/" + fn)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		pr, err := Read(f, enc)
		if err != nil {
			return nil, fmt.Errorf("simpresent: builtin %s: %w", fn, err)
		}
		if pr.Name == "" {
			pr.Name = name
		}
		return pr, nil
	}
	return nil, fmt.Errorf("simpresent: no builtin profile named %q", name)
}

// Builtins returns the names of the builtin profiles, sorted.
func Builtins() []string {
	ents, _ := builtins.ReadDir("profiles")
	var names []string
	for _, ent := range ents {
		fn := ent.Name()
		names = append(names, strings.TrimSuffix(fn, filepath.Ext(fn)))
	}
	slices.Sort(names)
	return names
}

// Load returns the builtin profile of the given name if there is one,
// and otherwise opens the given file.
func Load(nameOrFile string) (*Profile, error) {
	if slices.Contains(Builtins(), nameOrFile) {
		return Builtin(nameOrFile)
	}
	return Open(nameOrFile)
}
