package orchestration

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoScope is returned when neither an owner nor a list of owners is given.
var ErrNoScope = errors.New("must provide one of: owner, owners")

// Scope selects the repositories a run targets: a single repository
// (Owner and Repo), every repository of one owner (Owner), or every
// repository of several owners (Owners).
type Scope struct {
	Owner  string
	Repo   string
	Owners []string
}

// Validate checks that exactly one targeting mode is selected.
func (s Scope) Validate() error {
	owners := s.ownerList()

	switch {
	case len(s.Owners) > 0 && (s.Owner != "" || s.Repo != ""):
		return errors.New("owners cannot be combined with owner or repo")
	case len(s.Owners) > 0 && len(owners) == 0:
		return errors.New("owners must not be blank")
	case len(s.Owners) > 0:
		return nil
	case s.Repo != "" && s.Owner == "":
		return fmt.Errorf("repo %q requires an owner", s.Repo)
	case s.Owner == "":
		return ErrNoScope
	}
	return nil
}

// ownerList returns the trimmed, non-empty owners in the given order.
func (s Scope) ownerList() []string {
	owners := make([]string, 0, len(s.Owners))
	for _, o := range s.Owners {
		if o = strings.TrimSpace(o); o != "" {
			owners = append(owners, o)
		}
	}
	return owners
}

// String describes the scope for logs.
func (s Scope) String() string {
	switch {
	case len(s.Owners) > 0:
		return "owners " + strings.Join(s.ownerList(), ",")
	case s.Repo != "":
		return "repository " + s.Owner + "/" + s.Repo
	default:
		return "owner " + s.Owner
	}
}
