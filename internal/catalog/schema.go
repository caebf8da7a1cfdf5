package catalog

// CurrentVersion is the only catalog format version understood.
const CurrentVersion = "1"

// File is one parsed catalog file.
type File struct {
	Version   string              `yaml:"version"`
	Country   string              `yaml:"country,omitempty"`
	Region    string              `yaml:"region,omitempty"`
	Districts []District          `yaml:"districts"`
	Aliases   map[string][]string `yaml:"aliases,omitempty"`

	// Source is the path the file was loaded from, empty for in-memory data.
	Source string `yaml:"-"`
}

// District is a catalog entry.
type District struct {
	Name         string   `yaml:"name" validate:"notblank"`
	Headquarters string   `yaml:"headquarters,omitempty"`
	Aliases      []string `yaml:"aliases,omitempty"`
	// Region overrides File.Region for this district.
	Region string `yaml:"region,omitempty"`
}
