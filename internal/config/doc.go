// Package config layers ghlabels settings from flags, environment variables
// and an optional YAML config file.
//
// Precedence, highest first: command-line flags, GHLABELS_* environment
// variables, the config file, then defaults. The token additionally falls
// back to GITHUB_TOKEN.
//
// Example config file ($HOME/.config/ghlabels/config.yaml):
//
//	endpoint: https://github.example.com
//	file: s3://team-templates/labels.yml
//	no-delete: true
//	s3-region: eu-central-1
package config
