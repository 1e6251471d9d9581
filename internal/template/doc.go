// Package template loads the desired label set from a YAML template.
//
// A template is a YAML sequence of name/color records:
//
//	- name: bug
//	  color: d73a4a
//	- name: help wanted
//	  color: 008672
//
// Templates are read from a local file or, through an [ObjectStore], from an
// s3://bucket/key location. Every failure is a *LoadError: missing source,
// unparseable YAML, an empty template, or the first invalid record. Scalars
// are kept as written, so a color such as 000000 is not reduced to a number.
package template
