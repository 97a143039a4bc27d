package config

// File represents the structure of the buildinfo.yaml configuration file.
type File struct {
	CacheRoot   string `yaml:"cache_root"`
	URL         string `yaml:"url"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	APIKey      string `yaml:"apikey"`
	Parallelism int    `yaml:"parallelism"`
}
