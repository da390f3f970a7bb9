package config

// Source modes determine where page content is fetched from: either a
// dedicated content repository, or a sub-folder of the site's own repository.
const (
	ModeIndependentRepository = "independent-repository"
	ModeSubPath               = "sub-path"
)

// SiteInfo describes the site itself.
type SiteInfo struct {
	Name   string `yaml:"name" koanf:"name"`
	Slogan string `yaml:"slogan,omitempty" koanf:"slogan"`
}

// Repository identifies a repository on a git-hosting service.
type Repository struct {
	Service string `yaml:"service" koanf:"service"`
	Name    string `yaml:"name" koanf:"name"`
	Branch  string `yaml:"branch" koanf:"branch"`
}

// DataSource selects the content sourcing mode. Data is mode-dependent:
// a {service, name, branch} table for independent-repository mode, or a
// plain sub-folder string for sub-path mode.
type DataSource struct {
	Mode string `yaml:"mode" koanf:"mode"`
	Data any    `yaml:"data" koanf:"data"`
}

// NavLink is one entry in the navigation bar.
type NavLink struct {
	Display string `yaml:"display" koanf:"display"`
	Link    string `yaml:"link" koanf:"link"`
	Target  string `yaml:"target,omitempty" koanf:"target"`
}

// Navigation holds the navbar link list.
type Navigation struct {
	List []NavLink `yaml:"list" koanf:"list"`
}

// Config is the top-level karaty configuration, corresponding to karaty.yml.
// Pages maps a page file name to its template-config table: an open
// key-value map whose recognized keys are "using", "hide-navbar",
// "hide-footer" and "style". Unknown keys are ignored.
type Config struct {
	Site           SiteInfo                  `yaml:"site" koanf:"site"`
	Repository     Repository                `yaml:"repository" koanf:"repository"`
	DataSource     DataSource                `yaml:"data_source" koanf:"data_source"`
	Navigation     Navigation                `yaml:"navigation,omitempty" koanf:"navigation"`
	Pages          map[string]map[string]any `yaml:"pages,omitempty" koanf:"pages"`
	Include        []string                  `yaml:"include,omitempty" koanf:"include"`
	Exclude        []string                  `yaml:"exclude,omitempty" koanf:"exclude"`
	OutputDir      string                    `yaml:"output_dir" koanf:"output_dir"`
	MaxConcurrency int                       `yaml:"max_concurrency" koanf:"max_concurrency"`
}
