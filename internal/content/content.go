// Package content holds the hand-authored data shown on the page. It is loaded once at
// startup and never modified afterwards.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	errContentRead    = errors.New("failed to read content")
	errContentInvalid = errors.New("invalid content")
)

//go:embed default.yaml
var defaultContent []byte

type Profile struct {
	Greeting string `yaml:"greeting"`
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Tagline  string `yaml:"tagline"`
	Email    string `yaml:"email"`
	Location string `yaml:"location"`
}

// About paragraphs are markdown.
type About struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
}

type Stat struct {
	Value int    `yaml:"value"`
	Label string `yaml:"label"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Link        string   `yaml:"link"`
	Image       string   `yaml:"image"`
}

// Skill is a named proficiency from 0 to 100.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// Percent returns the level as a 0..1 fraction.
func (s Skill) Percent() float64 {
	return float64(s.Level) / 100
}

type Contact struct {
	Kind  string `yaml:"kind"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	URL   string `yaml:"url"`
}

type Social struct {
	Kind  string `yaml:"kind"`
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Content struct {
	Profile          Profile   `yaml:"profile"`
	About            About     `yaml:"about"`
	Stats            []Stat    `yaml:"stats"`
	ProjectsSubtitle string    `yaml:"projects_subtitle"`
	Projects         []Project `yaml:"projects"`
	SkillsSubtitle   string    `yaml:"skills_subtitle"`
	Skills           []Skill   `yaml:"skills"`
	ContactSubtitle  string    `yaml:"contact_subtitle"`
	Contacts         []Contact `yaml:"contacts"`
	Socials          []Social  `yaml:"socials"`
}

// Default returns the embedded content.
func Default() Content {
	content, err := Parse(defaultContent)
	if err != nil {
		panic(err)
	}

	return content
}

// Load reads content from path, or returns Default when path is empty.
func Load(path string) (Content, error) {
	if path == "" {
		return Default(), nil
	}

	body, errRead := os.ReadFile(path)
	if errRead != nil {
		return Content{}, errors.Join(errRead, errContentRead)
	}

	return Parse(body)
}

// Parse decodes and validates a yaml content document.
func Parse(body []byte) (Content, error) {
	var content Content
	if err := yaml.Unmarshal(body, &content); err != nil {
		return Content{}, errors.Join(err, errContentRead)
	}

	if err := content.Validate(); err != nil {
		return Content{}, err
	}

	return content, nil
}

func (c Content) Validate() error {
	var errs []error
	if c.Profile.Name == "" {
		errs = append(errs, fmt.Errorf("%w: profile name cannot be empty", errContentInvalid))
	}

	for index, project := range c.Projects {
		if project.Title == "" {
			errs = append(errs, fmt.Errorf("%w: project %d has no title", errContentInvalid, index))
		}
	}

	for index, skill := range c.Skills {
		if skill.Name == "" {
			errs = append(errs, fmt.Errorf("%w: skill %d has no name", errContentInvalid, index))
		}
		if skill.Level < 0 || skill.Level > 100 {
			errs = append(errs, fmt.Errorf("%w: skill %q level %d outside 0-100", errContentInvalid, skill.Name, skill.Level))
		}
	}

	return errors.Join(errs...)
}
