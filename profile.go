package reedsolomon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile bundles the construction parameters of a Codec so callers can
// name, persist, and load RS configurations instead of repeating NewCodec's
// seven positional arguments. Field names are YAML-tagged for cmd/rscodec's
// --profiles-file flag.
type Profile struct {
	NSym      int    `yaml:"nsym"`
	NSize     int    `yaml:"nsize"`
	FCR       int    `yaml:"fcr"`
	Prim      int    `yaml:"prim"`
	Generator int    `yaml:"generator"`
	CExp      uint   `yaml:"c_exp"`
	SingleGen bool   `yaml:"single_gen"`
	Name      string `yaml:"name,omitempty"`
}

// ProfileDefault is the canonical "Wikiversity"/QR-code RS configuration.
var ProfileDefault = Profile{
	NSym:      10,
	NSize:     255,
	FCR:       0,
	Prim:      defaultPrim,
	Generator: defaultGenerator,
	CExp:      defaultCExp,
	SingleGen: true,
	Name:      "default",
}

// ProfileADSBUAT is the ADS-B UAT variant: fcr=120, prim=0x187.
var ProfileADSBUAT = Profile{
	NSym:      14,
	NSize:     255,
	FCR:       120,
	Prim:      0x187,
	Generator: defaultGenerator,
	CExp:      defaultCExp,
	SingleGen: true,
	Name:      "adsb-uat",
}

// Build constructs a Codec from the profile.
func (p Profile) Build() (*Codec, error) {
	return NewCodec(p.NSym, p.NSize, p.FCR, p.Prim, p.Generator, p.CExp, p.SingleGen)
}

// ProfileSet is a named collection of profiles, loadable from YAML
// (cmd/rscodec's --profiles-file), keyed by Profile.Name.
type ProfileSet map[string]Profile

// LoadProfileSet reads a YAML document of the form:
//
//	profiles:
//	  - name: default
//	    nsym: 10
//	    nsize: 255
//	    fcr: 0
//	    prim: 285
//	    generator: 2
//	    c_exp: 8
//	    single_gen: true
//
// into a ProfileSet keyed by name.
func LoadProfileSet(path string) (ProfileSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reedsolomon: reading profile file: %w", err)
	}

	var doc struct {
		Profiles []Profile `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("reedsolomon: parsing profile file: %w", err)
	}

	set := make(ProfileSet, len(doc.Profiles))
	for _, p := range doc.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("reedsolomon: profile file %s: entry missing name", path)
		}
		set[p.Name] = p
	}
	return set, nil
}
