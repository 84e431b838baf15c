// Package content loads the portfolio content: profile, skills, projects, experience and values.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultContent []byte

// Content is the full, immutable set of portfolio data.
type Content struct {
	Profile    Profile      `yaml:"profile" json:"profile"`
	Skills     []SkillGroup `yaml:"skills" json:"skills"`
	Projects   []Project    `yaml:"projects" json:"projects"`
	Experience []Experience `yaml:"experience" json:"experience"`
	Values     []ValueGroup `yaml:"values" json:"values"`
}

// Profile describes the site owner.
type Profile struct {
	Name        string   `yaml:"name" json:"name"`
	FullName    string   `yaml:"full_name" json:"full_name,omitempty"`
	Title       string   `yaml:"title" json:"title"`
	Tagline     string   `yaml:"tagline" json:"tagline"`
	Status      string   `yaml:"status" json:"status,omitempty"` // availability badge in the hero
	Email       string   `yaml:"email" json:"email"`
	Phone       string   `yaml:"phone" json:"phone,omitempty"`
	Location    string   `yaml:"location" json:"location,omitempty"`
	GitHub      string   `yaml:"github" json:"github,omitempty"`
	LinkedIn    string   `yaml:"linkedin" json:"linkedin,omitempty"`
	ResumeURL   string   `yaml:"resume_url" json:"resume_url,omitempty"`
	Summary     string   `yaml:"summary" json:"summary,omitempty"`
	Bio         string   `yaml:"bio" json:"bio,omitempty"`
	AboutTags   []string `yaml:"about_tags" json:"about_tags,omitempty"`
	AboutPoints []string `yaml:"about_points" json:"about_points,omitempty"`
	HeroNote    string   `yaml:"hero_note" json:"hero_note,omitempty"`
}

// SkillGroup is a named list of skills.
type SkillGroup struct {
	Group string   `yaml:"group" json:"group"`
	Items []string `yaml:"items" json:"items"`
}

// Project is a single portfolio entry.
type Project struct {
	Name        string   `yaml:"name" json:"name"`
	Image       string   `yaml:"image" json:"image,omitempty"`
	Description string   `yaml:"description" json:"description"`
	Highlights  []string `yaml:"highlights" json:"highlights,omitempty"`
	Tech        []string `yaml:"tech" json:"tech,omitempty"`
	Live        string   `yaml:"live" json:"live,omitempty"`
	Repo        string   `yaml:"repo" json:"repo,omitempty"`
}

// Experience is a single position.
type Experience struct {
	Role    string   `yaml:"role" json:"role"`
	Org     string   `yaml:"org" json:"org"`
	Period  string   `yaml:"period" json:"period"`
	Bullets []string `yaml:"bullets" json:"bullets,omitempty"`
}

// ValueGroup is a titled list shown in the "beyond code" section.
type ValueGroup struct {
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
}

// Default returns the embedded content.
func Default() (*Content, error) {
	c, err := parse(defaultContent)
	if err != nil {
		return nil, fmt.Errorf("content: embedded default: %w", err)
	}
	return c, nil
}

// Load reads content from a YAML file. An empty path returns the embedded default.
// Unknown fields are rejected.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("content: reading %s: %w", path, err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("content: parsing %s: %w", path, err)
	}
	return c, nil
}

func parse(data []byte) (*Content, error) {
	var c Content
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err //nolint:wrapcheck // wrapped by callers with the source name
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that content is renderable.
func (c *Content) Validate() error {
	if c.Profile.Name == "" {
		return errors.New("profile.name cannot be empty")
	}
	seen := make(map[string]bool, len(c.Skills))
	for i, g := range c.Skills {
		if g.Group == "" {
			return fmt.Errorf("skills[%d]: group cannot be empty", i)
		}
		if seen[g.Group] {
			return fmt.Errorf("skills[%d]: duplicate group %q", i, g.Group)
		}
		seen[g.Group] = true
	}
	seen = make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		if p.Name == "" {
			return fmt.Errorf("projects[%d]: name cannot be empty", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("projects[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// HeroSkills returns at most maxGroups skill groups with at most maxItems items each.
func (c *Content) HeroSkills(maxGroups, maxItems int) []SkillGroup {
	groups := c.Skills
	if len(groups) > maxGroups {
		groups = groups[:maxGroups]
	}
	res := make([]SkillGroup, 0, len(groups))
	for _, g := range groups {
		items := g.Items
		if len(items) > maxItems {
			items = items[:maxItems]
		}
		res = append(res, SkillGroup{Group: g.Group, Items: items})
	}
	return res
}
