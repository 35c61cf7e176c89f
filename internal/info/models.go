package info

// PlatformContent is text for one transport
type PlatformContent struct {
	Description string `yaml:"description" json:"description"`
}

// Topic is a sub-entry of a feature, usually one command
type Topic struct {
	// Command syntax shown in help listings
	Command string `yaml:"command,omitempty" json:"command,omitempty"`

	// Order in help listings, ascending
	Order int `yaml:"order,omitempty" json:"order,omitempty"`

	Telegram PlatformContent `yaml:"telegram" json:"telegram"`
	Discord  PlatformContent `yaml:"discord" json:"discord"`
}

// Feature is one help page
type Feature struct {
	Name  string `yaml:"name" json:"name"`
	Title string `yaml:"title" json:"title"`

	Telegram PlatformContent `yaml:"telegram" json:"telegram"`
	Discord  PlatformContent `yaml:"discord" json:"discord"`

	Topics map[string]Topic `yaml:"topics,omitempty" json:"topics,omitempty"`
}
