package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultFile is read when no configuration path is given.
const DefaultFile = "icongen.json"

var Config = DefaultConfiguration()

func DefaultConfiguration() *Configuration {
	return &Configuration{
		IconsDir: "icons",
		OutDir:   "packages/exem-icons-react/src",
		Variants: []string{
			"light",
			"medium",
			"bold",
			"filled",
		},
		FilledVariants: []string{
			"filled",
		},
		Layout:                  "variant", // Any of variant, flat
		Naming:                  "plain",   // Any of plain, suffixed
		DispatchName:            "ExemIcon",
		ColorKeywords:           []string{"black", "#000", "#000000"},
		DefaultSize:             24,
		PreserveDecorativeFills: true,
		Clean:                   true,
		ServeConfig: ServeConfiguration{
			Port: 8100,
		},
	}
}

type Configuration struct {
	IconsDir                string             `json:"icons_directory,omitempty"`
	OutDir                  string             `json:"output_directory,omitempty"`
	Variants                []string           `json:"variants,omitempty"`
	FilledVariants          []string           `json:"filled_variants,omitempty"`
	Layout                  string             `json:"layout,omitempty"`
	Naming                  string             `json:"naming,omitempty"`
	DispatchName            string             `json:"dispatch_name,omitempty"`
	ColorKeywords           []string           `json:"color_keywords,omitempty"`
	DefaultSize             int                `json:"default_size,omitempty"`
	PreserveDecorativeFills bool               `json:"preserve_decorative_fills"`
	Minify                  bool               `json:"minify"`
	Manifest                bool               `json:"manifest"`
	Clean                   bool               `json:"clean"`
	ServeConfig             ServeConfiguration `json:"serve_config,omitempty"`
}

type ServeConfiguration struct {
	Port int `json:"port"`
}

// IsFilled reports whether variant draws with the filled paint policy.
func (c *Configuration) IsFilled(variant string) bool {
	for _, v := range c.FilledVariants {
		if v == variant {
			return true
		}
	}
	return false
}

// Load decodes configpath over the defaults. A missing file is not an error.
func Load(configpath string) (*Configuration, error) {
	if configpath == "" {
		configpath = DefaultFile
	}

	conf := DefaultConfiguration()

	_, err := os.Stat(configpath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not access configuration file %s: %v", configpath, err)
		}

		return conf, nil
	}

	f, err := os.Open(configpath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	err = json.NewDecoder(f).Decode(conf)
	if err != nil {
		return nil, fmt.Errorf("could not decode configuration file %s: %w", configpath, err)
	}

	return conf, nil
}

func Init(configpath string) error {
	conf, err := Load(configpath)
	if err != nil {
		return err
	}
	Config = conf
	return nil
}
