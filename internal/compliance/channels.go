package compliance

import (
	"gopkg.in/yaml.v3"
	"regexp"
	"strings"
)

// `conda config --get channels` prints e.g. `--add channels 'defaults'   # lowest priority`.
var addChannelPattern = regexp.MustCompile(`^--add channels '([^']*)'`)

type channelsConfig struct {
	Channels []string `yaml:"channels"`
}

// ParseChannels extracts channel names from `conda config --get channels` or
// `conda config --show channels` output. Unrecognised output yields nil.
func ParseChannels(output string) []string {
	var channels []string
	for _, line := range strings.Split(output, "\n") {
		if m := addChannelPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			channels = append(channels, m[1])
		}
	}
	if channels != nil {
		return channels
	}

	var config channelsConfig
	if err := yaml.Unmarshal([]byte(output), &config); err != nil {
		return nil
	}
	return config.Channels
}
