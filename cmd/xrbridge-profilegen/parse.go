package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RawCatalog is the root of profiles.yaml.
type RawCatalog struct {
	Profiles []RawProfileDef `yaml:"profiles"`
	Families []RawFamilyDef  `yaml:"families"`
	Tracker  RawTrackerDef   `yaml:"tracker"`
}

// RawProfileDef lists the components of one interaction profile.
type RawProfileDef struct {
	Profile    string            `yaml:"profile"` // Go constant, e.g. "ProfileVive"
	Users      string            `yaml:"users"`   // "hands" or "roles"
	Components []RawComponentDef `yaml:"components"`
}

// RawComponentDef is one input or output component.
type RawComponentDef struct {
	Path  string   `yaml:"path"`
	Sides []string `yaml:"sides"` // "left", "right"; empty means both
}

// RawFamilyDef holds the localized component names of a controller family.
type RawFamilyDef struct {
	Family string       `yaml:"family"` // Go constant, e.g. "FamilyIndex"
	Names  []RawNameDef `yaml:"names"`
}

// RawNameDef maps a component prefix to a display name.
type RawNameDef struct {
	Prefix string `yaml:"prefix"`
	Name   string `yaml:"name"`
}

// RawTrackerDef holds the tracker component names and roles.
type RawTrackerDef struct {
	Names []RawNameDef `yaml:"names"`
	Roles []RawRoleDef `yaml:"roles"`
}

// RawRoleDef is one tracker role.
type RawRoleDef struct {
	Role string `yaml:"role"`
	Name string `yaml:"name"`
}

// LoadCatalog reads and validates a catalog file.
func LoadCatalog(path string) (*RawCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// ParseCatalog parses and validates catalog YAML.
func ParseCatalog(data []byte) (*RawCatalog, error) {
	var c RawCatalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *RawCatalog) validate() error {
	seenProfiles := make(map[string]bool)
	for _, p := range c.Profiles {
		if !strings.HasPrefix(p.Profile, "Profile") {
			return fmt.Errorf("profile %q: constant must start with Profile", p.Profile)
		}
		if seenProfiles[p.Profile] {
			return fmt.Errorf("profile %s: duplicate", p.Profile)
		}
		seenProfiles[p.Profile] = true

		if p.Users != "hands" && p.Users != "roles" {
			return fmt.Errorf("profile %s: users must be hands or roles, got %q", p.Profile, p.Users)
		}

		seen := make(map[string]bool)
		for _, comp := range p.Components {
			if err := validComponent(comp.Path); err != nil {
				return fmt.Errorf("profile %s: %w", p.Profile, err)
			}
			if seen[comp.Path] {
				return fmt.Errorf("profile %s: duplicate component %s", p.Profile, comp.Path)
			}
			seen[comp.Path] = true
			if p.Users == "roles" && len(comp.Sides) > 0 {
				return fmt.Errorf("profile %s: component %s: sides not allowed on roles", p.Profile, comp.Path)
			}
			for _, s := range comp.Sides {
				if s != "left" && s != "right" {
					return fmt.Errorf("profile %s: component %s: unknown side %q", p.Profile, comp.Path, s)
				}
			}
		}
	}

	for _, f := range c.Families {
		if !strings.HasPrefix(f.Family, "Family") {
			return fmt.Errorf("family %q: constant must start with Family", f.Family)
		}
		if err := validNames(f.Names); err != nil {
			return fmt.Errorf("family %s: %w", f.Family, err)
		}
	}

	if err := validNames(c.Tracker.Names); err != nil {
		return fmt.Errorf("tracker: %w", err)
	}
	seenRoles := make(map[string]bool)
	for _, r := range c.Tracker.Roles {
		if r.Role == "" || r.Name == "" {
			return fmt.Errorf("tracker: role and name are required")
		}
		if seenRoles[r.Role] {
			return fmt.Errorf("tracker: duplicate role %s", r.Role)
		}
		seenRoles[r.Role] = true
	}
	return nil
}

func validComponent(path string) error {
	if !strings.HasPrefix(path, "/input/") && !strings.HasPrefix(path, "/output/") {
		return fmt.Errorf("component %q must start with /input/ or /output/", path)
	}
	if strings.HasSuffix(path, "/") {
		return fmt.Errorf("component %q has a trailing slash", path)
	}
	return nil
}

func validNames(names []RawNameDef) error {
	for _, n := range names {
		if err := validComponent(n.Prefix); err != nil {
			return err
		}
		if n.Name == "" {
			return fmt.Errorf("component %s: empty name", n.Prefix)
		}
	}
	return nil
}
